package ports

import (
	"context"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Email uniqueness is enforced by the store; Create surfaces a violation as
// *domain.DuplicateEmailError.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
