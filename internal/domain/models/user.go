// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a profile in the directory.
//
// UserID is the external stable identifier (assigned by the identity
// provider) and is the key every API surface uses; the Mongo ObjectID is an
// internal storage detail. Username is unique and stored lower-cased.
// Threads holds the ObjectIDs of threads this user authored, in insertion
// order.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"-"`
	UserID    string               `bson:"user_id" json:"id"`
	Username  string               `bson:"username" json:"username"`
	Name      string               `bson:"name" json:"name"`
	NameCI    string               `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Bio       string               `bson:"bio,omitempty" json:"bio,omitempty"`
	Image     string               `bson:"image,omitempty" json:"image,omitempty"`
	Onboarded bool                 `bson:"onboarded" json:"onboarded"`
	Threads   []primitive.ObjectID `bson:"threads" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
