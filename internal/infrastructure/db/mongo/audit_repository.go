package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notarium/notary-api/internal/core/domain"
)

const collectionAuditLogs = "audit_logs"

// AuditRepository persists the append-only audit trail. Insert and a sorted
// recent query are the whole surface: no document in this collection is ever
// updated or deleted.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditLogs)}
}

type auditDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ActorRole string             `bson:"actor_role"`
	ActorID   string             `bson:"actor_id,omitempty"`
	Action    string             `bson:"action"`
	Entity    string             `bson:"entity"`
	EntityID  string             `bson:"entity_id,omitempty"`
	Details   map[string]string  `bson:"details,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *auditDoc) toDomain() *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:        d.ID.Hex(),
		ActorRole: d.ActorRole,
		ActorID:   d.ActorID,
		Action:    d.Action,
		Entity:    d.Entity,
		EntityID:  d.EntityID,
		Details:   d.Details,
		CreatedAt: d.CreatedAt,
	}
}

// Insert appends one entry and returns its id.
func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditEntry) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		ActorRole: e.ActorRole,
		ActorID:   e.ActorID,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert audit entry: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindRecent returns up to limit entries, newest first by created_at.
func (r *AuditRepository) FindRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent audit: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.AuditEntry
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates the created_at index the recent-activity sort uses.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
