package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// CleaningRepository persists cleaning tasks. List returns newest first.
type CleaningRepository interface {
	Create(ctx context.Context, task *domain.CleaningTask) (*domain.CleaningTask, error)
	List(ctx context.Context) ([]domain.CleaningTask, error)
	Delete(ctx context.Context, id string) (*domain.CleaningTask, error)
}
