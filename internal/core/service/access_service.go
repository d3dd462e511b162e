package service

import (
	"context"
	"time"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// AccessRequestService implements the public access-request intake and the
// admin-only review listing.
type AccessRequestService struct {
	repo ports.AccessRequestRepository
}

func NewAccessRequestService(repo ports.AccessRequestRepository) *AccessRequestService {
	return &AccessRequestService{repo: repo}
}

func (s *AccessRequestService) Submit(ctx context.Context, name, email, message string) (*domain.AccessRequest, error) {
	return s.repo.Create(ctx, &domain.AccessRequest{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *AccessRequestService) List(ctx context.Context) ([]domain.AccessRequest, error) {
	return s.repo.List(ctx)
}
