package service

import (
	"context"
	"testing"
	"time"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

type stubBoardRepo struct {
	board *domain.Whiteboard
}

func (r *stubBoardRepo) Latest(context.Context) (*domain.Whiteboard, error) {
	if r.board == nil {
		return nil, nil
	}
	clone := *r.board
	return &clone, nil
}

func (r *stubBoardRepo) Upsert(_ context.Context, board *domain.Whiteboard) (*domain.Whiteboard, error) {
	if r.board == nil {
		clone := *board
		clone.ID = "b1"
		clone.CreatedAt = time.Now().UTC()
		r.board = &clone
	} else {
		r.board.TodayPrep = board.TodayPrep
		r.board.TomorrowPrep = board.TomorrowPrep
		r.board.UpdatedAt = board.UpdatedAt
	}
	clone := *r.board
	return &clone, nil
}

func TestWhiteboardService_Get_NeverWritten(t *testing.T) {
	svc := NewWhiteboardService(&stubBoardRepo{})

	board, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if board == nil {
		t.Fatalf("expected an empty board, got nil")
	}
	if board.TodayPrep != "" || board.TomorrowPrep != "" {
		t.Fatalf("expected empty fields, got %+v", board)
	}
}

func TestWhiteboardService_SaveThenGet(t *testing.T) {
	repo := &stubBoardRepo{}
	svc := NewWhiteboardService(repo)

	saved, err := svc.Save(context.Background(), "u1", "dice onions", "make stock")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.TodayPrep != "dice onions" || saved.TomorrowPrep != "make stock" {
		t.Fatalf("unexpected board: %+v", saved)
	}

	board, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if board.TodayPrep != "dice onions" {
		t.Fatalf("latest write not visible: %+v", board)
	}
}

func TestWhiteboardService_LatestWins(t *testing.T) {
	repo := &stubBoardRepo{}
	svc := NewWhiteboardService(repo)

	_, _ = svc.Save(context.Background(), "u1", "first", "first")
	_, _ = svc.Save(context.Background(), "u2", "second", "second")

	board, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if board.TodayPrep != "second" {
		t.Fatalf("expected latest write to win, got %+v", board)
	}
}
