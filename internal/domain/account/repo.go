package account

import (
	"context"
	"errors"
	"time"
)

// ErrEmailTaken reports a unique violation on users.email.
var ErrEmailTaken = errors.New("email already registered")

type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)

	StoreRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}
