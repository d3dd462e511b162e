package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// PrepLogRepository persists prep logs. ListByUser returns the caller's
// logs, newest first.
type PrepLogRepository interface {
	Create(ctx context.Context, log *domain.PrepLog) (*domain.PrepLog, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PrepLog, error)
}
