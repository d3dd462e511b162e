package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// AccessRequestRepository persists access requests. List returns newest first.
type AccessRequestRepository interface {
	Create(ctx context.Context, req *domain.AccessRequest) (*domain.AccessRequest, error)
	List(ctx context.Context) ([]domain.AccessRequest, error)
}
