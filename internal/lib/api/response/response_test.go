package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	t.Parallel()

	resp := OK()

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
}

func TestError(t *testing.T) {
	t.Parallel()

	resp := Error("failed to write report")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "failed to write report", resp.Error)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type request struct {
		Format string `validate:"required,oneof=json table"`
		Limit  int    `validate:"gte=0"`
	}

	testCases := []struct {
		name     string
		req      request
		expected string
	}{
		{
			name:     "Missing required field",
			req:      request{},
			expected: "field Format is a required field",
		},
		{
			name:     "Value outside enum",
			req:      request{Format: "csv"},
			expected: "field Format must be one of [json table]",
		},
		{
			name:     "Generic tag",
			req:      request{Format: "json", Limit: -1},
			expected: "field Limit is not valid",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validator.New().Struct(tc.req)
			require.Error(t, err)

			var validateErr validator.ValidationErrors
			require.ErrorAs(t, err, &validateErr)

			resp := ValidationError(validateErr)

			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tc.expected, resp.Error)
		})
	}
}
