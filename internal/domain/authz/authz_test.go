package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/hirewire/hirewire/internal/errors"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		ownerID string
		check   func(error) bool
	}{
		{"owner matches", "employer-1", "employer-1", nil},
		{"owner matches after trim", " employer-1 ", "employer-1", nil},
		{"different actor", "employer-2", "employer-1", apperrors.IsAuthorization},
		{"empty actor", "", "employer-1", apperrors.IsValidation},
		{"blank actor", "   ", "employer-1", apperrors.IsValidation},
		{"empty owner never matches", "employer-1", "", apperrors.IsAuthorization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actorID, tt.ownerID)
			if tt.check == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, tt.check(err))
			}
		})
	}
}
