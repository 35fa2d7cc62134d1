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
	"github.com/notarium/notary-api/internal/core/ports"
)

const collectionDocuments = "documents"

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection(collectionDocuments)}
}

type documentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CaseID      string             `bson:"case_id"`
	Name        string             `bson:"name"`
	TemplateKey string             `bson:"template_key,omitempty"`
	Content     string             `bson:"content,omitempty"`
	FileURL     string             `bson:"file_url,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *documentDoc) toDomain() *domain.Document {
	return &domain.Document{
		ID:          d.ID.Hex(),
		CaseID:      d.CaseID,
		Name:        d.Name,
		TemplateKey: d.TemplateKey,
		Content:     d.Content,
		FileURL:     d.FileURL,
		Tags:        d.Tags,
		CreatedAt:   d.CreatedAt,
	}
}

// Create inserts a new document record and returns its id.
func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := documentDoc{
		CaseID:      d.CaseID,
		Name:        d.Name,
		TemplateKey: d.TemplateKey,
		Content:     d.Content,
		FileURL:     d.FileURL,
		Tags:        d.Tags,
		CreatedAt:   d.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns document records, optionally restricted to one case.
func (r *DocumentRepository) List(ctx context.Context, filter ports.DocumentFilter) ([]*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CaseID != "" {
		query["case_id"] = filter.CaseID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []*domain.Document
	for cur.Next(ctx) {
		var doc documentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = append(docs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}
