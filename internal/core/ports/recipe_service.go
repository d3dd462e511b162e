package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

type RecipeService interface {
	Create(ctx context.Context, name, steps, station, createdBy string) (*domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
	Delete(ctx context.Context, id string) (*domain.Recipe, error)
}
