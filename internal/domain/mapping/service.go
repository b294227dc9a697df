package mapping

import (
	"context"
	"errors"

	"github.com/carelink/carelink/pkg/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create runs the assignment gate in fixed order: patient ownership first,
// then doctor existence, then pair uniqueness. The order keeps the most
// access-sensitive failure first no matter which other condition would also
// fail.
func (s *Service) Create(ctx context.Context, in Input, callerID int64) (*Mapping, error) {
	owned, err := s.repo.PatientOwned(ctx, in.PatientID, callerID)
	if err != nil {
		return nil, apperr.Internal("Internal server error while creating mapping", err)
	}
	if !owned {
		return nil, apperr.NotFound("Patient not found or you do not have permission to assign doctors to this patient")
	}

	exists, err := s.repo.DoctorExists(ctx, in.DoctorID)
	if err != nil {
		return nil, apperr.Internal("Internal server error while creating mapping", err)
	}
	if !exists {
		return nil, apperr.NotFound("Doctor not found")
	}

	dup, err := s.repo.PairExists(ctx, in.PatientID, in.DoctorID)
	if err != nil {
		return nil, apperr.Internal("Internal server error while creating mapping", err)
	}
	if dup {
		return nil, apperr.Conflict("This doctor is already assigned to this patient")
	}

	m := &Mapping{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Notes:     in.Notes,
		CreatedBy: callerID,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		// Two racing creates can both pass the pre-check; the unique
		// constraint catches the loser.
		if errors.Is(err, ErrDuplicatePair) {
			return nil, apperr.Conflict("This doctor is already assigned to this patient")
		}
		return nil, apperr.Internal("Internal server error while creating mapping", err)
	}
	return m, nil
}

// List returns every mapping with patient and doctor display fields. This is
// the administrative overview and is intentionally not scoped to the caller.
func (s *Service) List(ctx context.Context) ([]*Detail, error) {
	items, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, apperr.Internal("Internal server error while retrieving mappings", err)
	}
	if items == nil {
		items = []*Detail{}
	}
	return items, nil
}

// ListByPatient returns the given patient's assigned doctors. The patient
// must belong to the caller.
func (s *Service) ListByPatient(ctx context.Context, patientID, callerID int64) ([]*PatientDoctor, error) {
	owned, err := s.repo.PatientOwned(ctx, patientID, callerID)
	if err != nil {
		return nil, apperr.Internal("Internal server error while retrieving patient doctors", err)
	}
	if !owned {
		return nil, apperr.NotFound("Patient not found or you do not have permission to view this patient")
	}

	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperr.Internal("Internal server error while retrieving patient doctors", err)
	}
	if items == nil {
		items = []*PatientDoctor{}
	}
	return items, nil
}

// Delete removes a mapping. The caller must own the referenced patient; a
// mapping that exists but hangs off someone else's patient is reported as
// missing.
func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	deleted, err := s.repo.DeleteOwned(ctx, id, callerID)
	if err != nil {
		return apperr.Internal("Internal server error while deleting mapping", err)
	}
	if !deleted {
		return apperr.NotFound("Mapping not found or you do not have permission to remove this mapping")
	}
	return nil
}
