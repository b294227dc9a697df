package account

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/carelink/carelink/internal/platform/auth"
	"github.com/carelink/carelink/pkg/apperr"
)

// Service handles registration, login and refresh-token rotation.
type Service struct {
	repo       Repository
	issuer     *auth.TokenIssuer
	refreshTTL time.Duration
}

func NewService(repo Repository, issuer *auth.TokenIssuer, refreshTTL time.Duration) *Service {
	return &Service{repo: repo, issuer: issuer, refreshTTL: refreshTTL}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal("Internal server error while registering user", err)
	}

	u := &User{Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal("Internal server error while registering user", err)
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*Credentials, error) {
	u, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, apperr.Internal("Internal server error during login", err)
	}
	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	return s.issueCredentials(ctx, u)
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued. Expired or unknown tokens are rejected without detail.
func (s *Service) Refresh(ctx context.Context, in RefreshInput) (*Credentials, error) {
	t, err := s.repo.GetRefreshToken(ctx, in.RefreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return nil, apperr.Internal("Internal server error during token refresh", err)
	}
	if time.Now().After(t.ExpiresAt) {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	u, err := s.repo.GetUserByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return nil, apperr.Internal("Internal server error during token refresh", err)
	}

	if err := s.repo.DeleteRefreshToken(ctx, t.Token); err != nil {
		return nil, apperr.Internal("Internal server error during token refresh", err)
	}
	return s.issueCredentials(ctx, u)
}

func (s *Service) Me(ctx context.Context, callerID int64) (*User, error) {
	u, err := s.repo.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Internal server error while retrieving profile", err)
	}
	return u, nil
}

func (s *Service) issueCredentials(ctx context.Context, u *User) (*Credentials, error) {
	access, err := s.issuer.Issue(u.ID, u.Email)
	if err != nil {
		return nil, apperr.Internal("Internal server error while issuing tokens", err)
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, apperr.Internal("Internal server error while issuing tokens", err)
	}
	expiresAt := time.Now().Add(s.refreshTTL)
	if err := s.repo.StoreRefreshToken(ctx, u.ID, refresh, expiresAt); err != nil {
		return nil, apperr.Internal("Internal server error while issuing tokens", err)
	}

	return &Credentials{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
