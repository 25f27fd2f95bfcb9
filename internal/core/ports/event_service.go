package ports

import (
	"context"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

// AuthEventService records audit-trail entries. Implementations are invoked
// from the dispatcher workers, off the request path.
type AuthEventService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuthEventSink is the producer side: handlers enqueue events without waiting
// for persistence.
type AuthEventSink interface {
	Enqueue(event domain.AuthEvent)
}
