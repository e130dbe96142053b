package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimToNull(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"plain value", "A1", strp("A1")},
		{"surrounding whitespace trimmed", "  A1  ", strp("A1")},
		{"inner whitespace kept", " iPhone 15 ", strp("iPhone 15")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimToNull(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestNewNullString(t *testing.T) {
	assert.Nil(t, NewNullString(""))

	got := NewNullString("  padded  ")
	require.NotNil(t, got)
	assert.Equal(t, "  padded  ", *got, "NewNullString does not trim")
}

func strp(s string) *string { return &s }
