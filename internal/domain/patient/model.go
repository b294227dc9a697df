package patient

import "time"

// Patient maps to the patients table. Every row is private to the caller who
// created it.
type Patient struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          *string    `json:"email"`
	Phone          *string    `json:"phone"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Address        *string    `json:"address"`
	MedicalHistory *string    `json:"medical_history"`
	CreatedBy      int64      `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Input is the payload accepted on create and update.
type Input struct {
	Name           string  `json:"name" validate:"required,min=2,max=255"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,min=10,max=20"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address        *string `json:"address" validate:"omitempty,max=1000"`
	MedicalHistory *string `json:"medical_history" validate:"omitempty,max=2000"`
}
