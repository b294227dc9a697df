package doctor

import "time"

// Doctor maps to the doctors table. Doctors are visible to every
// authenticated caller; only the creator may modify or delete one.
type Doctor struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Specialization *string   `json:"specialization"`
	LicenseNumber  *string   `json:"license_number"`
	Hospital       *string   `json:"hospital"`
	CreatedBy      int64     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// Input is the payload accepted on create and update.
type Input struct {
	Name           string  `json:"name" validate:"required,min=2,max=255"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,min=10,max=20"`
	Specialization *string `json:"specialization" validate:"omitempty,max=255"`
	LicenseNumber  *string `json:"license_number" validate:"omitempty,max=100"`
	Hospital       *string `json:"hospital" validate:"omitempty,max=255"`
}
