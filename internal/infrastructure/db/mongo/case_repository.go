package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
)

const collectionCases = "cases"

type CaseRepository struct {
	col *mongo.Collection
}

func NewCaseRepository(db *mongo.Database) *CaseRepository {
	return &CaseRepository{col: db.Collection(collectionCases)}
}

type caseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ClientID    string             `bson:"client_id,omitempty"`
	Title       string             `bson:"title"`
	Type        string             `bson:"type"`
	Status      string             `bson:"status"`
	Description string             `bson:"description,omitempty"`
	AssignedTo  string             `bson:"assigned_to,omitempty"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *caseDoc) toDomain() *domain.Case {
	return &domain.Case{
		ID:          d.ID.Hex(),
		ClientID:    d.ClientID,
		Title:       d.Title,
		Type:        d.Type,
		Status:      domain.CaseStatus(d.Status),
		Description: d.Description,
		AssignedTo:  d.AssignedTo,
		DueDate:     d.DueDate,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create inserts a new case document and returns its id.
func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := caseDoc{
		ClientID:    c.ClientID,
		Title:       c.Title,
		Type:        c.Type,
		Status:      string(c.Status),
		Description: c.Description,
		AssignedTo:  c.AssignedTo,
		DueDate:     c.DueDate,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert case: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByID retrieves a case by its hex id.
func (r *CaseRepository) FindByID(ctx context.Context, id string) (*domain.Case, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc caseDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("find case: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns cases, optionally filtered by status.
func (r *CaseRepository) List(ctx context.Context, filter ports.CaseFilter) ([]*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cur.Close(ctx)

	var cases []*domain.Case
	for cur.Next(ctx) {
		var doc caseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode case: %w", err)
		}
		cases = append(cases, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

// UpdateStatus sets status and updated_at on the single matching document.
// Returns the matched count so the service can distinguish "not found" from
// "updated".
func (r *CaseRepository) UpdateStatus(ctx context.Context, id string, status domain.CaseStatus, updatedAt time.Time) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": updatedAt.UTC()}},
	)
	if err != nil {
		return 0, fmt.Errorf("update case status: %w", err)
	}
	return res.MatchedCount, nil
}

// CountByStatuses counts cases whose status is in the given set.
func (r *CaseRepository) CountByStatuses(ctx context.Context, statuses []domain.CaseStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"status": bson.M{"$in": values}})
	if err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes the workflow queries rely on.
func (r *CaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
