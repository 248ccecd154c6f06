package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderTypePredicates(t *testing.T) {
	tests := []struct {
		provider ProviderType
		valid    bool
		external bool
	}{
		{ProviderTypeLocal, true, false},
		{ProviderTypeGoogle, true, true},
		{ProviderTypeGitHub, true, true},
		{ProviderType("gitlab"), false, false},
		{ProviderType(""), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.provider.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.provider.IsValid())
			assert.Equal(t, tt.external, tt.provider.IsExternal())
		})
	}
}
