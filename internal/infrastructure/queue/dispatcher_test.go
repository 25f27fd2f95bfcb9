package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

type collectingService struct {
	mu     sync.Mutex
	events []domain.AuthEvent
	done   chan struct{}
	want   int
}

func (s *collectingService) Record(_ context.Context, event domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := &collectingService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{Email: "a@x.com", Kind: domain.EventUserRegistered})
	d.Enqueue(domain.AuthEvent{Email: "b@x.com", Kind: domain.EventLoginOK})
	d.Enqueue(domain.AuthEvent{Email: "a@x.com", Kind: domain.EventLoginFailed})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d", len(svc.events))
	}
}

func TestDispatcher_SameEmailSameShard(t *testing.T) {
	d := NewDispatcher(4, &collectingService{done: make(chan struct{}), want: 0}, zerolog.Nop())

	first := d.shardIndex("ana@x.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("ana@x.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
