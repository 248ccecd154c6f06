// Package entity contains the core business objects of the project.
package entity

import "time"

// Question is a user-submitted question in the Q&A board.
// Owner is set once at creation and never changes afterwards.
type Question struct {
	ID          string    // Hex document ID.
	Title       string    // Short summary of the question.
	Description string    // Full question body.
	Owner       string    // Principal ID of the creator. Immutable.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last edit.
}

// Answer is a reply to a question.
type Answer struct {
	ID         string    // Hex document ID.
	QuestionID string    // The question this answer belongs to.
	Content    string    // Answer body.
	Owner      string    // Principal ID of the creator. Immutable.
	CreatedAt  time.Time // Timestamp of creation.
	UpdatedAt  time.Time // Timestamp of the last edit.
}
