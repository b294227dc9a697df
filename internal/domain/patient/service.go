package patient

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/carelink/carelink/pkg/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func parseDOB(in *Input) (*time.Time, error) {
	if in.DateOfBirth == nil {
		return nil, nil
	}
	dob, err := time.Parse("2006-01-02", *in.DateOfBirth)
	if err != nil {
		return nil, apperr.Invalid("Validation failed", []apperr.FieldError{
			{Field: "date_of_birth", Message: "Please provide a valid date of birth (YYYY-MM-DD)"},
		})
	}
	return &dob, nil
}

func (s *Service) Create(ctx context.Context, in Input, callerID int64) (*Patient, error) {
	dob, err := parseDOB(&in)
	if err != nil {
		return nil, err
	}

	p := &Patient{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		DateOfBirth:    dob,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
		CreatedBy:      callerID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Internal("Internal server error while creating patient", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, callerID int64) ([]*Patient, error) {
	items, err := s.repo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, apperr.Internal("Internal server error while retrieving patients", err)
	}
	if items == nil {
		items = []*Patient{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id, callerID int64) (*Patient, error) {
	p, err := s.repo.GetOwned(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Patient not found")
		}
		return nil, apperr.Internal("Internal server error while retrieving patient", err)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input, callerID int64) (*Patient, error) {
	dob, err := parseDOB(&in)
	if err != nil {
		return nil, err
	}

	p := &Patient{
		ID:             id,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		DateOfBirth:    dob,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
		CreatedBy:      callerID,
	}
	if err := s.repo.UpdateOwned(ctx, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Patient not found")
		}
		return nil, apperr.Internal("Internal server error while updating patient", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	deleted, err := s.repo.DeleteOwned(ctx, id, callerID)
	if err != nil {
		return apperr.Internal("Internal server error while deleting patient", err)
	}
	if !deleted {
		return apperr.NotFound("Patient not found")
	}
	return nil
}
