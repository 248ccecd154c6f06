// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record in the system. A user is created either by
// local registration (email + password hash) or by the first login through an
// external provider (provider + provider user ID). The document ID doubles as
// the principal identifier embedded in issued tokens and stamped as the owner
// of created resources; callers treat it as an opaque string.
type User struct {
	ID             string       // Hex document ID, assigned by the store on creation.
	Email          string       // Login identifier, unique across all users.
	Name           string       // Display name, refreshed on every external login.
	PasswordHash   string       // bcrypt hash. Empty for provider-only accounts.
	Provider       ProviderType // Which provider created this account.
	ProviderUserID string       // The provider's subject ID. Empty for local accounts.
	CreatedAt      time.Time    // Timestamp of when this user account was created.
	UpdatedAt      time.Time    // Timestamp of the last modification to this user's data.
}

// PrincipalID returns the opaque identifier used as token subject and
// resource owner.
func (u *User) PrincipalID() string {
	return u.ID
}
