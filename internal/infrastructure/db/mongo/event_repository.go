package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sfpacim/finance-api/internal/core/domain"
)

const eventCollection = "auth_events"

// AuthEventRepository persists the authentication audit trail.
type AuthEventRepository struct {
	coll *mongo.Collection
}

func NewAuthEventRepository(db *mongo.Database) *AuthEventRepository {
	return &AuthEventRepository{coll: db.Collection(eventCollection)}
}

type mongoAuthEvent struct {
	Email     string `bson:"email"`
	Kind      string `bson:"kind"`
	RemoteIP  string `bson:"remote_ip,omitempty"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *AuthEventRepository) Insert(ctx context.Context, event domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Email:     event.Email,
		Kind:      string(event.Kind),
		RemoteIP:  event.RemoteIP,
		CreatedAt: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
