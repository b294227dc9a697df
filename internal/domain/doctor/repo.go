package doctor

import "context"

// Repository is the persistence gateway for doctors. Reads are global;
// mutations are scoped to the creating user.
type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	UpdateOwned(ctx context.Context, d *Doctor) error
	DeleteOwned(ctx context.Context, id, creatorID int64) (bool, error)
}
