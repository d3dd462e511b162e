package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

type CleaningService interface {
	Create(ctx context.Context, title, description, createdBy string) (*domain.CleaningTask, error)
	List(ctx context.Context) ([]domain.CleaningTask, error)
	Delete(ctx context.Context, id string) (*domain.CleaningTask, error)
}
