package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushub/events-api/internal/core/domain"
)

const eventsCollection = "events"

// EventRepository implements ports.EventRepository on MongoDB.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

type eventDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Type        string             `bson:"type"`
	Category    string             `bson:"category"`
	StartDate   time.Time          `bson:"start_date"`
	EndDate     time.Time          `bson:"end_date"`
	Description string             `bson:"description"`
	Picture     string             `bson:"picture,omitempty"`
	ApplyLink   string             `bson:"apply_link,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"created_by"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// EnsureIndexes creates the lookup indexes on the events collection.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "start_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *EventRepository) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	creator, err := primitive.ObjectIDFromHex(event.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("invalid creator id %q: %w", event.CreatedBy, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := eventDoc{
		Name:        event.Name,
		Type:        event.Type,
		Category:    event.Category,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Description: event.Description,
		Picture:     event.Picture,
		ApplyLink:   event.ApplyLink,
		CreatedBy:   creator,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *event
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc eventDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	return decodeEvents(ctx, cur)
}

func (r *EventRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Event, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	return decodeEvents(ctx, cur)
}

// Update overwrites the mutable fields of the event document. created_by is
// intentionally absent from the $set.
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	oid, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        event.Name,
		"type":        event.Type,
		"category":    event.Category,
		"start_date":  event.StartDate,
		"end_date":    event.EndDate,
		"description": event.Description,
		"picture":     event.Picture,
		"apply_link":  event.ApplyLink,
		"updated_at":  event.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (d *eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Type:        d.Type,
		Category:    d.Category,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Description: d.Description,
		Picture:     d.Picture,
		ApplyLink:   d.ApplyLink,
		CreatedBy:   d.CreatedBy.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func decodeEvents(ctx context.Context, cur *mongo.Cursor) ([]domain.Event, error) {
	defer cur.Close(ctx)

	var events []domain.Event
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
