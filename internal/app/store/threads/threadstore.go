package threadstore

import (
	"context"
	"fmt"
	"time"

	"github.com/loomfeed/loomfeed/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("threads")}
}

// Insert creates a new thread authored by the given user. CommunityID is
// always stored as null and Children starts empty; replies are attached
// later through the reply-creation path.
func (s *Store) Insert(ctx context.Context, text string, author primitive.ObjectID) (models.Thread, error) {
	th := models.Thread{
		ID:          primitive.NewObjectID(),
		Text:        text,
		Author:      author,
		CommunityID: nil,
		Children:    []primitive.ObjectID{},
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, th); err != nil {
		return models.Thread{}, fmt.Errorf("insert thread: %w", err)
	}
	return th, nil
}

// GetByID loads a thread by ObjectID. Returns mongo.ErrNoDocuments if not
// found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Thread, error) {
	var th models.Thread
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&th); err != nil {
		return nil, err
	}
	return &th, nil
}

// GetByIDs batch-loads threads by ObjectID, deduplicating the input before
// the query. The result maps id to thread; ids that match no document are
// simply absent, so callers reassembling a reference array in order can skip
// dangling references.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Thread, error) {
	out := make(map[primitive.ObjectID]models.Thread, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	seen := make(map[primitive.ObjectID]bool, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": unique}})
	if err != nil {
		return nil, fmt.Errorf("find threads: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var th models.Thread
		if err := cur.Decode(&th); err != nil {
			return nil, fmt.Errorf("decode thread: %w", err)
		}
		out[th.ID] = th
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
