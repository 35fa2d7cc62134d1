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

const collectionAppointments = "appointments"

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

type appointmentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClientID  string             `bson:"client_id,omitempty"`
	Service   string             `bson:"service"`
	StartTime time.Time          `bson:"start_time"`
	EndTime   time.Time          `bson:"end_time"`
	Location  string             `bson:"location,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
	Status    string             `bson:"status"`
	CaseID    string             `bson:"case_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *appointmentDoc) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:        d.ID.Hex(),
		ClientID:  d.ClientID,
		Service:   d.Service,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Location:  d.Location,
		Notes:     d.Notes,
		Status:    domain.AppointmentStatus(d.Status),
		CaseID:    d.CaseID,
		CreatedAt: d.CreatedAt,
	}
}

// Create inserts a new appointment document and returns its id.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := appointmentDoc{
		ClientID:  a.ClientID,
		Service:   a.Service,
		StartTime: a.StartTime.UTC(),
		EndTime:   a.EndTime.UTC(),
		Location:  a.Location,
		Notes:     a.Notes,
		Status:    string(a.Status),
		CaseID:    a.CaseID,
		CreatedAt: a.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert appointment: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindOverlapping returns non-cancelled appointments whose half-open interval
// intersects [start, end): existing.start < end AND existing.end > start.
func (r *AppointmentRepository) FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"start_time": bson.M{"$lt": end.UTC()},
		"end_time":   bson.M{"$gt": start.UTC()},
		"status":     bson.M{"$ne": string(domain.AppointmentCancelled)},
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find overlapping: %w", err)
	}
	defer cur.Close(ctx)

	return decodeAppointments(ctx, cur)
}

// List returns appointments ascending by start time, optionally restricted to
// slots starting in [filter.From, filter.To).
func (r *AppointmentRepository) List(ctx context.Context, filter ports.AppointmentFilter) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if !filter.From.IsZero() || !filter.To.IsZero() {
		window := bson.M{}
		if !filter.From.IsZero() {
			window["$gte"] = filter.From.UTC()
		}
		if !filter.To.IsZero() {
			window["$lt"] = filter.To.UTC()
		}
		query["start_time"] = window
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	return decodeAppointments(ctx, cur)
}

// UpdateStatus sets the status on the single matching document and returns
// the matched count.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return 0, fmt.Errorf("update appointment status: %w", err)
	}
	return res.MatchedCount, nil
}

// CountStartingBetween counts appointments with start_time in [from, to).
func (r *AppointmentRepository) CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{
		"start_time": bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
	})
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes the overlap scan and day listings rely on.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "start_time", Value: 1}, {Key: "end_time", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeAppointments(ctx context.Context, cur *mongo.Cursor) ([]*domain.Appointment, error) {
	var items []*domain.Appointment
	for cur.Next(ctx) {
		var doc appointmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return items, nil
}
