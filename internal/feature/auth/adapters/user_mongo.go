// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"tienda_backend/internal/feature/auth/domain"
	"tienda_backend/internal/feature/auth/domain/entity"
	"tienda_backend/internal/feature/auth/usecase"
)

// usersCollection is the name of the users collection in the document store.
const usersCollection = "users"

// userMongo is the MongoDB implementation of the UserRepository interface.
type userMongo struct {
	col *mongo.Collection
}

// Compile-time check that userMongo implements usecase.UserRepository.
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo creates a userMongo backed by the given database.
func NewUserMongo(db *mongo.Database) *userMongo {
	return &userMongo{col: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. The index is the only
// synchronization point for concurrent registrations with the same email:
// exactly one insert wins, the rest fail with a duplicate key error.
func (r *userMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// Create inserts a new user and fills in its store-assigned id.
// A duplicate email is reported as domain.ErrEmailAlreadyExists.
func (r *userMongo) Create(ctx context.Context, u *entity.User) error {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = id
	}
	return nil
}

// FindByEmail retrieves a user by email, matching case-sensitively as stored.
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

// FindByID retrieves a user by its hex object id. A malformed id is treated
// the same as an absent user.
func (r *userMongo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// Save replaces the stored document for an existing user.
func (r *userMongo) Save(ctx context.Context, u *entity.User) error {
	res, err := r.col.ReplaceOne(ctx, bson.D{{Key: "_id", Value: u.ID}}, u)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userMongo) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var u entity.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}
