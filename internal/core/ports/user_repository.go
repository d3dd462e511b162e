package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// UserRepository is the credential store: the single owner of User records.
// Create must fail with domain.ErrUserExists when the username is taken,
// including under concurrent registration (unique index, not a racy check).
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
