package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-03-15", "2024-03-15"},
		{"15.03.2024", "2024-03-15"},
		{"15/03/2024", "2024-03-15"},
		{"2024/03/15", "2024-03-15"},
		{" 2024-03-15 ", "2024-03-15"},
	}

	for _, tt := range tests {
		parsed, err := ParseDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, ToISODate(parsed))
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "2024-13-01", "32.01.2024"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestToISODate(t *testing.T) {
	date := time.Date(2024, time.January, 5, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-05", ToISODate(date))
}

func TestYearMonth(t *testing.T) {
	ym, err := YearMonth("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", ym)

	_, err = YearMonth("15.03.2024")
	assert.Error(t, err)

	_, err = YearMonth("")
	assert.Error(t, err)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2024-03"))
	assert.False(t, IsValidMonth("2024-13"))
	assert.False(t, IsValidMonth("2024-03-15"))
	assert.False(t, IsValidMonth("march"))
}
