// Package model holds the BSON document shapes persisted in MongoDB.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors the 'users' collection. The email field and the
// (provider, providerUserId) pair carry unique indexes.
type UserModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	Name           string             `bson:"name"`
	PasswordHash   string             `bson:"passwordHash,omitempty"`
	Provider       string             `bson:"provider"`
	ProviderUserID string             `bson:"providerUserId,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}
