package userposts

import (
	"context"
	"fmt"
	"time"

	threadstore "github.com/loomfeed/loomfeed/internal/app/store/threads"
	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuthorSummary is the reduced projection attached to replies: enough to
// render an avatar and a link, and nothing that would let population recurse
// back into that author's own threads.
type AuthorSummary struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
}

// Reply is a reply thread with its author resolved.
type Reply struct {
	ID        primitive.ObjectID `json:"id"`
	Text      string             `json:"text"`
	Author    AuthorSummary      `json:"author"`
	CreatedAt time.Time          `json:"created_at"`
}

// Post is a top-level thread with its replies resolved.
type Post struct {
	ID        primitive.ObjectID `json:"id"`
	Text      string             `json:"text"`
	Children  []Reply            `json:"children"`
	CreatedAt time.Time          `json:"created_at"`
}

// UserPosts is a user's full post-and-reply tree: the root user's profile
// fields with the threads array expanded two levels deep. Expansion stops at
// the reply authors, which keeps the tree bounded no matter how reply chains
// loop between users.
type UserPosts struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Threads  []Post `json:"threads"`
}

// Fetch resolves the post-and-reply tree for the user with the given
// external id. Each level below the root is one batched lookup keyed by the
// references collected at the previous level, deduplicated first so threads
// that share repliers cost one fetch. Returns (nil, nil) when the user does
// not exist; "no such user" is an empty result, not an error.
func Fetch(ctx context.Context, db *mongo.Database, userID string) (*UserPosts, error) {
	users := userstore.New(db)
	threads := threadstore.New(db)

	root, err := users.GetByUserID(ctx, userID)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch user %q: %w", userID, err)
	}

	// Level 1: the user's authored threads.
	topByID, err := threads.GetByIDs(ctx, root.Threads)
	if err != nil {
		return nil, fmt.Errorf("fetch threads for user %q: %w", userID, err)
	}

	// Level 2: every reply referenced by a level-1 thread.
	var childIDs []primitive.ObjectID
	for _, id := range root.Threads {
		if th, ok := topByID[id]; ok {
			childIDs = append(childIDs, th.Children...)
		}
	}
	replyByID, err := threads.GetByIDs(ctx, childIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch replies for user %q: %w", userID, err)
	}

	// Level 3: the reply authors, as reduced summaries.
	authorIDs := make([]primitive.ObjectID, 0, len(replyByID))
	for _, th := range replyByID {
		authorIDs = append(authorIDs, th.Author)
	}
	authors, err := fetchAuthorSummaries(ctx, db, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch reply authors for user %q: %w", userID, err)
	}

	out := &UserPosts{
		UserID:   root.UserID,
		Username: root.Username,
		Name:     root.Name,
		Image:    root.Image,
		Threads:  make([]Post, 0, len(root.Threads)),
	}

	// Reassemble in the stored reference order at both levels.
	for _, id := range root.Threads {
		th, ok := topByID[id]
		if !ok {
			continue
		}
		post := Post{
			ID:        th.ID,
			Text:      th.Text,
			Children:  make([]Reply, 0, len(th.Children)),
			CreatedAt: th.CreatedAt,
		}
		for _, cid := range th.Children {
			reply, ok := replyByID[cid]
			if !ok {
				continue
			}
			post.Children = append(post.Children, Reply{
				ID:        reply.ID,
				Text:      reply.Text,
				Author:    authors[reply.Author],
				CreatedAt: reply.CreatedAt,
			})
		}
		out.Threads = append(out.Threads, post)
	}
	return out, nil
}

// fetchAuthorSummaries batch-loads the reduced author projection for the
// given user ObjectIDs, deduplicated before the query.
func fetchAuthorSummaries(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]AuthorSummary, error) {
	out := make(map[primitive.ObjectID]AuthorSummary, len(ids))
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

	proj := options.Find().SetProjection(bson.M{
		"_id":     1,
		"user_id": 1,
		"name":    1,
		"image":   1,
	})
	cur, err := db.Collection("users").Find(ctx, bson.M{"_id": bson.M{"$in": unique}}, proj)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u struct {
			ID     primitive.ObjectID `bson:"_id"`
			UserID string             `bson:"user_id"`
			Name   string             `bson:"name"`
			Image  string             `bson:"image"`
		}
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out[u.ID] = AuthorSummary{UserID: u.UserID, Name: u.Name, Image: u.Image}
	}
	return out, cur.Err()
}
