package service

import (
	"context"
	"time"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// WhiteboardService implements the shared prep board. There is one logical
// board per kitchen; a missing board reads as empty rather than an error.
type WhiteboardService struct {
	repo ports.WhiteboardRepository
}

func NewWhiteboardService(repo ports.WhiteboardRepository) *WhiteboardService {
	return &WhiteboardService{repo: repo}
}

func (s *WhiteboardService) Get(ctx context.Context) (*domain.Whiteboard, error) {
	board, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return &domain.Whiteboard{TodayPrep: "", TomorrowPrep: ""}, nil
	}
	return board, nil
}

func (s *WhiteboardService) Save(ctx context.Context, userID, todayPrep, tomorrowPrep string) (*domain.Whiteboard, error) {
	return s.repo.Upsert(ctx, &domain.Whiteboard{
		UserID:       userID,
		TodayPrep:    todayPrep,
		TomorrowPrep: tomorrowPrep,
		UpdatedAt:    time.Now().UTC(),
	})
}
