package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// RecipeRepository persists recipe cards.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
	Delete(ctx context.Context, id string) (*domain.Recipe, error)
}
