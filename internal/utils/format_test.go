// internal/utils/format_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "6,000", FormatAmount(6000))
	assert.Equal(t, "500", FormatAmount(500))
	assert.Equal(t, "1,250,000", FormatAmount(1250000))
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"6000", 6000, true},
		{"6,000", 6000, true},
		{" 1,250,000 ", 1250000, true},
		{"KES 500", 500, true},
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseAmount(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		}
	}
}

func TestGenerateReferenceCode(t *testing.T) {
	code, err := GenerateReferenceCode()
	assert.NoError(t, err)
	assert.Len(t, code, 8)

	// Ambiguous characters are excluded from the alphabet
	for _, r := range code {
		assert.NotContains(t, "01IO", string(r))
	}
}
