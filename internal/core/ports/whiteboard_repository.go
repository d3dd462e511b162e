package ports

import (
	"context"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

// WhiteboardRepository persists the shared prep board. Latest returns nil
// (no error) when the board has never been written.
type WhiteboardRepository interface {
	Latest(ctx context.Context) (*domain.Whiteboard, error)
	Upsert(ctx context.Context, board *domain.Whiteboard) (*domain.Whiteboard, error)
}
