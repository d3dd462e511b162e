package service

import (
	"context"
	"time"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// PrepLogService implements per-cook prep logs.
type PrepLogService struct {
	repo ports.PrepLogRepository
}

func NewPrepLogService(repo ports.PrepLogRepository) *PrepLogService {
	return &PrepLogService{repo: repo}
}

func (s *PrepLogService) Record(ctx context.Context, userID string, date time.Time, items []domain.PrepItem) (*domain.PrepLog, error) {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	return s.repo.Create(ctx, &domain.PrepLog{
		UserID:    userID,
		Date:      date.UTC(),
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *PrepLogService) ListByUser(ctx context.Context, userID string) ([]domain.PrepLog, error) {
	return s.repo.ListByUser(ctx, userID)
}
