package patient

import "context"

// Repository is the persistence gateway for patients. Lookups are always
// scoped to the owning user; a row that exists but belongs to someone else is
// reported the same way as a missing row.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*Patient, error)
	GetOwned(ctx context.Context, id, ownerID int64) (*Patient, error)
	UpdateOwned(ctx context.Context, p *Patient) error
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)
}
