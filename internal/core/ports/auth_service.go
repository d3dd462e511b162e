package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// AuthService covers registration and session issuance.
type AuthService interface {
	Register(ctx context.Context, username, password, accessKey, station string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
