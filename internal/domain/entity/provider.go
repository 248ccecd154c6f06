// Package entity contains the core business objects of the project.
package entity

// ProviderType represents the method a user authenticates with.
type ProviderType string

const (
	// ProviderTypeLocal indicates email/password credentials stored locally.
	ProviderTypeLocal ProviderType = "local"
	// ProviderTypeGoogle indicates a linked Google account.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeGitHub indicates a linked GitHub account.
	ProviderTypeGitHub ProviderType = "github"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a valid value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeLocal, ProviderTypeGoogle, ProviderTypeGitHub:
		return true
	default:
		return false
	}
}

// IsExternal reports whether the provider is an external identity provider
// rather than locally stored credentials.
func (p ProviderType) IsExternal() bool {
	return p == ProviderTypeGoogle || p == ProviderTypeGitHub
}
