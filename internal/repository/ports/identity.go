package ports

import (
	"context"

	"github.com/Parindya2/TripRoute/internal/domain"
)

// IdentityProvider is the external user-identity API. Errors carry the
// upstream message when one is available.
type IdentityProvider interface {
	Login(ctx context.Context, username, password string) (*domain.AuthSession, error)
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthSession, error)
}
