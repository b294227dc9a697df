package mapping

import (
	"context"
	"errors"
)

// ErrDuplicatePair is returned by Create when the (patient_id, doctor_id)
// pair already exists. The schema's unique constraint makes this atomic even
// when two requests race past the existence pre-check.
var ErrDuplicatePair = errors.New("mapping already exists for patient and doctor")

// Repository is the persistence gateway for mappings. It also exposes the
// cross-entity probes the assignment gate needs, so the whole gate runs
// against one store.
type Repository interface {
	PatientOwned(ctx context.Context, patientID, ownerID int64) (bool, error)
	DoctorExists(ctx context.Context, doctorID int64) (bool, error)
	PairExists(ctx context.Context, patientID, doctorID int64) (bool, error)
	Create(ctx context.Context, m *Mapping) error
	ListDetailed(ctx context.Context) ([]*Detail, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*PatientDoctor, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)
}
