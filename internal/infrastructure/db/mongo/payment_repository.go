package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/notarium/notary-api/internal/core/domain"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

type paymentDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ClientID        string             `bson:"client_id,omitempty"`
	CaseID          string             `bson:"case_id,omitempty"`
	Service         string             `bson:"service"`
	AmountCents     int64              `bson:"amount_cents"`
	Currency        string             `bson:"currency"`
	Status          string             `bson:"status"`
	StripeSessionID string             `bson:"stripe_session_id,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

// Create inserts a new payment record and returns its id.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := paymentDoc{
		ClientID:        p.ClientID,
		CaseID:          p.CaseID,
		Service:         p.Service,
		AmountCents:     p.AmountCents,
		Currency:        p.Currency,
		Status:          string(p.Status),
		StripeSessionID: p.StripeSessionID,
		CreatedAt:       p.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
