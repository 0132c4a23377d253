package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/loomfeed/loomfeed/internal/app/system/normalize"
	"github.com/loomfeed/loomfeed/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateUsername is returned when an upsert would claim a username
// that another user already holds (case-insensitively).
var ErrDuplicateUsername = errors.New("a user with this username already exists")

// ErrNotFound is returned by write operations whose target user does not
// exist. Read paths return mongo.ErrNoDocuments directly.
var ErrNotFound = errors.New("user not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByUserID loads a user by the external stable identifier.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByObjectID loads a user by storage ObjectID.
func (s *Store) GetByObjectID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate holds the fields the profile upsert writes. Image is the
// already-resolved hosted value; classification and upload happen before the
// store is involved.
type ProfileUpdate struct {
	Username string
	Name     string
	Bio      string
	Image    string
}

// UpsertProfile creates or updates the user keyed on the external userID.
// It sets username (lower-cased), name, bio, image and onboarded=true, and
// leaves the threads array untouched on existing users. Returns
// ErrDuplicateUsername when the username is taken by a different user.
func (s *Store) UpsertProfile(ctx context.Context, userID string, upd ProfileUpdate) error {
	name := normalize.DisplayName(upd.Name)
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"username":   normalize.Username(upd.Username),
			"name":       name,
			"name_ci":    text.Fold(name),
			"bio":        upd.Bio,
			"image":      upd.Image,
			"onboarded":  true,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"threads":    []primitive.ObjectID{},
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("upsert user %q: %w", userID, err)
	}
	return nil
}

// AppendThread atomically appends a thread reference to the user's threads
// array. Returns ErrNotFound when no user matches the ObjectID.
func (s *Store) AppendThread(ctx context.Context, userOID, threadID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": userOID}, bson.M{
		"$push": bson.M{"threads": threadID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("append thread to user %s: %w", userOID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of users matching filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// Find runs a raw find with the given options and decodes all results.
func (s *Store) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.User, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
