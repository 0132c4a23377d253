// internal/domain/models/thread.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Thread is a post or a reply. Replies are threads referenced from a parent
// thread's Children array; Children is empty at creation and is appended to
// only by the reply-creation path.
//
// CommunityID is reserved for grouping threads into communities. It is
// accepted on the wire but always persisted as null for now.
type Thread struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Text        string               `bson:"text" json:"text"`
	Author      primitive.ObjectID   `bson:"author" json:"author"`
	CommunityID *primitive.ObjectID  `bson:"community_id" json:"community_id"`
	Children    []primitive.ObjectID `bson:"children" json:"-"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
}
