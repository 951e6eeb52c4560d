package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/flowerlibrary/flower-server/internal/errors"
	"github.com/flowerlibrary/flower-server/internal/validation"
)

type TestRequest struct {
	Name    string `json:"name" validate:"required"`
	OwnerID int64  `json:"owner_id,omitempty" validate:"gte=0"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(TestRequest{Name: "Rose"})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       TestRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing required field",
			req:       TestRequest{Name: ""},
			wantField: "name",
			wantMsg:   "is required",
		},
		{
			name:      "negative owner",
			req:       TestRequest{Name: "Rose", OwnerID: -1},
			wantField: "owner_id",
			wantMsg:   "must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)
			assert.Equal(t, "validation failed", domainErr.Message)

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
		})
	}
}

func TestValidator_ValidateWithMessage(t *testing.T) {
	v := validation.New()

	err := v.ValidateWithMessage(TestRequest{}, "flower name is required")

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "flower name is required", domainErr.Message)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(TestRequest{})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(map[string]string)

	// Should use JSON tag name "name", not struct field name "Name"
	assert.Contains(t, details, "name")
	assert.NotContains(t, details, "Name")
}
