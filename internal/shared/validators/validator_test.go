package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `validate:"required"`
	Workers int    `validate:"min=0,max=8"`
	Format  string `validate:"oneof=text json"`
}

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    sample
		expected []string
	}{
		{
			name:     "valid",
			input:    sample{Name: "a", Workers: 2, Format: "json"},
			expected: nil,
		},
		{
			name:     "required without param",
			input:    sample{Workers: 2, Format: "text"},
			expected: []string{"Name (required)"},
		},
		{
			name:     "params are included",
			input:    sample{Name: "a", Workers: 9, Format: "xml"},
			expected: []string{"Workers (max=8)", "Format (oneof=text json)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := New().Struct(tt.input)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expected, Messages(err, FieldError.Field))
		})
	}
}

func TestMessages_NotValidationErrors(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Messages(errors.New("boom"), FieldError.Field))
}
