package ports

import (
	"context"
	"time"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

type PrepLogService interface {
	Record(ctx context.Context, userID string, date time.Time, items []domain.PrepItem) (*domain.PrepLog, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PrepLog, error)
}
