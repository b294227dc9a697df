package doctor

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/carelink/carelink/pkg/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in Input, callerID int64) (*Doctor, error) {
	d := &Doctor{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Specialization: in.Specialization,
		LicenseNumber:  in.LicenseNumber,
		Hospital:       in.Hospital,
		CreatedBy:      callerID,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apperr.Internal("Internal server error while creating doctor", err)
	}
	return d, nil
}

// List returns every doctor. Reads are deliberately unscoped: any
// authenticated caller may browse the full directory.
func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("Internal server error while retrieving doctors", err)
	}
	if items == nil {
		items = []*Doctor{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Doctor not found")
		}
		return nil, apperr.Internal("Internal server error while retrieving doctor", err)
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input, callerID int64) (*Doctor, error) {
	d := &Doctor{
		ID:             id,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Specialization: in.Specialization,
		LicenseNumber:  in.LicenseNumber,
		Hospital:       in.Hospital,
		CreatedBy:      callerID,
	}
	if err := s.repo.UpdateOwned(ctx, d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Doctor not found")
		}
		return nil, apperr.Internal("Internal server error while updating doctor", err)
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	deleted, err := s.repo.DeleteOwned(ctx, id, callerID)
	if err != nil {
		return apperr.Internal("Internal server error while deleting doctor", err)
	}
	if !deleted {
		return apperr.NotFound("Doctor not found")
	}
	return nil
}
