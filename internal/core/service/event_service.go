package service

import (
	"context"
	"fmt"

	"github.com/sfpacim/finance-api/internal/core/domain"
	"github.com/sfpacim/finance-api/internal/core/ports"
)

// AuthEventService persists audit-trail entries. Invoked from dispatcher
// workers, never on the request path.
type AuthEventService struct {
	repo ports.AuthEventRepository
}

func NewAuthEventService(repo ports.AuthEventRepository) *AuthEventService {
	return &AuthEventService{repo: repo}
}

func (s *AuthEventService) Record(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}
	return nil
}
