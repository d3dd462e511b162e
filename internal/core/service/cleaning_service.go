package service

import (
	"context"
	"time"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// CleaningService implements the cleaning board operations.
type CleaningService struct {
	repo ports.CleaningRepository
}

func NewCleaningService(repo ports.CleaningRepository) *CleaningService {
	return &CleaningService{repo: repo}
}

func (s *CleaningService) Create(ctx context.Context, title, description, createdBy string) (*domain.CleaningTask, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.CleaningTask{
		Title:       title,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *CleaningService) List(ctx context.Context) ([]domain.CleaningTask, error) {
	return s.repo.List(ctx)
}

func (s *CleaningService) Delete(ctx context.Context, id string) (*domain.CleaningTask, error) {
	return s.repo.Delete(ctx, id)
}
