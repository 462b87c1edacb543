package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushub/events-api/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository persists admin audit entries.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"actor_id":    entry.ActorID,
		"action":      entry.Action,
		"target_id":   entry.TargetID,
		"at":          entry.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
