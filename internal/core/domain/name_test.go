package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Name
		wantErr bool
	}{
		{name: "minimum length", raw: "Jo", want: "Jo"},
		{name: "full name with space", raw: "João Silva", want: "João Silva"},
		{name: "accented letters", raw: "José Álvares Çedilha", want: "José Álvares Çedilha"},
		{name: "trims surrounding whitespace", raw: "  Maria  ", want: "Maria"},
		{name: "maximum length", raw: strings.Repeat("a", 100), want: Name(strings.Repeat("a", 100))},
		{name: "single character", raw: "A", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
		{name: "over maximum length", raw: strings.Repeat("a", 101), wantErr: true},
		{name: "digits rejected", raw: "João123", wantErr: true},
		{name: "punctuation rejected", raw: "Anne-Marie", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseName(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameEquality(t *testing.T) {
	a, err := ParseName("  João Silva ")
	require.NoError(t, err)
	b, err := ParseName("João Silva")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
