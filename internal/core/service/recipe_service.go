package service

import (
	"context"
	"time"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// RecipeService implements the recipe card operations.
type RecipeService struct {
	repo ports.RecipeRepository
}

func NewRecipeService(repo ports.RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

func (s *RecipeService) Create(ctx context.Context, name, steps, station, createdBy string) (*domain.Recipe, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Recipe{
		Name:      name,
		Steps:     steps,
		Station:   station,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *RecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.repo.List(ctx)
}

func (s *RecipeService) Delete(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.repo.Delete(ctx, id)
}
