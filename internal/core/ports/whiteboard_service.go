package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

type WhiteboardService interface {
	Get(ctx context.Context) (*domain.Whiteboard, error)
	Save(ctx context.Context, userID, todayPrep, tomorrowPrep string) (*domain.Whiteboard, error)
}
