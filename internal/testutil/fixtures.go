package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/loomfeed/loomfeed/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts an onboarded user with the given external id and
// username. The display name is derived from the username.
func (f *Fixtures) CreateUser(ctx context.Context, userID, username string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Username:  username,
		Name:      "User " + username,
		NameCI:    text.Fold("User " + username),
		Bio:       "",
		Onboarded: true,
		Threads:   []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return u
}

// CreateThread inserts a thread authored by the given user and appends it
// to the author's threads array, mirroring what the create path does.
func (f *Fixtures) CreateThread(ctx context.Context, author models.User, txt string) models.Thread {
	f.t.Helper()

	th := models.Thread{
		ID:        primitive.NewObjectID(),
		Text:      txt,
		Author:    author.ID,
		Children:  []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("threads").InsertOne(ctx, th); err != nil {
		f.t.Fatalf("failed to create test thread: %v", err)
	}

	_, err := f.db.Collection("users").UpdateOne(ctx,
		bson.M{"_id": author.ID},
		bson.M{"$push": bson.M{"threads": th.ID}})
	if err != nil {
		f.t.Fatalf("failed to link test thread to author: %v", err)
	}

	return th
}

// CreateReply inserts a reply thread and appends it to the parent's
// children array. Replies are not added to the author's threads array.
func (f *Fixtures) CreateReply(ctx context.Context, parent models.Thread, author models.User, txt string) models.Thread {
	f.t.Helper()

	reply := models.Thread{
		ID:        primitive.NewObjectID(),
		Text:      txt,
		Author:    author.ID,
		Children:  []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("threads").InsertOne(ctx, reply); err != nil {
		f.t.Fatalf("failed to create test reply: %v", err)
	}

	_, err := f.db.Collection("threads").UpdateOne(ctx,
		bson.M{"_id": parent.ID},
		bson.M{"$push": bson.M{"children": reply.ID}})
	if err != nil {
		f.t.Fatalf("failed to link test reply to parent: %v", err)
	}

	return reply
}
