package mapping

import "time"

// Mapping assigns one doctor to one patient. The (patient_id, doctor_id)
// pair is unique; the creator is the patient's owner.
type Mapping struct {
	ID         int64     `json:"id"`
	PatientID  int64     `json:"patient_id"`
	DoctorID   int64     `json:"doctor_id"`
	Notes      *string   `json:"notes"`
	CreatedBy  int64     `json:"created_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Detail is a mapping joined with patient and doctor display fields, used by
// the global listing.
type Detail struct {
	Mapping
	PatientName    string  `json:"patient_name"`
	PatientEmail   *string `json:"patient_email"`
	DoctorName     string  `json:"doctor_name"`
	DoctorEmail    *string `json:"doctor_email"`
	Specialization *string `json:"specialization"`
}

// PatientDoctor is a mapping joined with the assigned doctor's details, used
// by the per-patient listing.
type PatientDoctor struct {
	Mapping
	DoctorName     string  `json:"doctor_name"`
	DoctorEmail    *string `json:"doctor_email"`
	DoctorPhone    *string `json:"doctor_phone"`
	Specialization *string `json:"specialization"`
	LicenseNumber  *string `json:"license_number"`
	Hospital       *string `json:"hospital"`
}

// Input is the payload accepted on create.
type Input struct {
	PatientID int64   `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int64   `json:"doctor_id" validate:"required,gt=0"`
	Notes     *string `json:"notes" validate:"omitempty,max=1000"`
}
