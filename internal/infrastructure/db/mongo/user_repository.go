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

	"github.com/campushub/events-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Name             string               `bson:"name"`
	Email            string               `bson:"email"`
	PasswordHash     string               `bson:"password_hash"`
	Role             string               `bson:"role"`
	Phone            string               `bson:"phone,omitempty"`
	College          string               `bson:"college,omitempty"`
	ProfilePicture   string               `bson:"profile_picture,omitempty"`
	RegisteredEvents []primitive.ObjectID `bson:"registered_events,omitempty"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

// EnsureIndexes creates the unique email index that backs the duplicate
// registration check.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a new user. The unique email index turns a concurrent
// duplicate registration into domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Phone:        user.Phone,
		College:      user.College,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIDs returns the users matching the given ids. Missing ids are
// silently omitted from the result.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	oids, err := toObjectIDs(ids)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Update overwrites the mutable fields of the user document. An email that
// collides with another account surfaces as domain.ErrUserExists.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":            user.Name,
		"email":           user.Email,
		"password_hash":   user.PasswordHash,
		"phone":           user.Phone,
		"college":         user.College,
		"profile_picture": user.ProfilePicture,
		"updated_at":      user.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AddRegisteredEvent appends an event reference; $addToSet keeps it
// idempotent.
func (r *UserRepository) AddRegisteredEvent(ctx context.Context, userID, eventID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	eid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$addToSet": bson.M{"registered_events": eid}},
	)
	if err != nil {
		return fmt.Errorf("add registered event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (d *userDoc) toDomain() *domain.User {
	events := make([]string, 0, len(d.RegisteredEvents))
	for _, oid := range d.RegisteredEvents {
		events = append(events, oid.Hex())
	}
	return &domain.User{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		Role:             d.Role,
		Phone:            d.Phone,
		College:          d.College,
		ProfilePicture:   d.ProfilePicture,
		RegisteredEvents: events,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid object id %q: %w", id, err)
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
