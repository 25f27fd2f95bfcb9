package ports

import (
	"context"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

// AuthEventRepository persists audit-trail entries.
type AuthEventRepository interface {
	Insert(ctx context.Context, event domain.AuthEvent) error
}
