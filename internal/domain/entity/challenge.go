// Package entity contains the core business objects of the project.
package entity

import "time"

// Challenge is a coding challenge posted for the community.
type Challenge struct {
	ID          string    // Hex document ID.
	Title       string    // Challenge title.
	Description string    // Challenge statement.
	Owner       string    // Principal ID of the creator. Immutable.
	CreatedAt   time.Time // Timestamp of creation.
}

// Comment is a discussion entry attached to a challenge.
type Comment struct {
	ID          string    // Hex document ID.
	ChallengeID string    // The challenge this comment belongs to.
	Content     string    // Comment body.
	Owner       string    // Principal ID of the creator. Immutable.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last edit.
}
