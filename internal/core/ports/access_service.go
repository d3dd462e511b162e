package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

type AccessRequestService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.AccessRequest, error)
	List(ctx context.Context) ([]domain.AccessRequest, error)
}
