package service

import (
	"testing"

	domainerrors "skillhub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeMutation(t *testing.T) {
	tests := []struct {
		name      string
		owner     string
		principal string
		allowed   bool
	}{
		{name: "owner acts on own resource", owner: "user-1", principal: "user-1", allowed: true},
		{name: "different principal", owner: "user-1", principal: "user-2", allowed: false},
		{name: "empty principal", owner: "user-1", principal: "", allowed: false},
		{name: "empty principal and empty owner", owner: "", principal: "", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeMutation(tt.owner, tt.principal)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			}
		})
	}
}
