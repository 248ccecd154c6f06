// Package entity contains the core business objects of the project.
package entity

import "time"

// Tutorial is a user-authored tutorial, discoverable by tag.
type Tutorial struct {
	ID        string    // Hex document ID.
	Title     string    // Tutorial title.
	Content   string    // Tutorial body.
	Tags      []string  // Free-form tags used for search.
	Owner     string    // Principal ID of the creator. Immutable.
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of the last edit.
}
