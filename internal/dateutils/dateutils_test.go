package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		format   string
	}{
		{
			name:     "ISO format",
			input:    "2025-09-01",
			expected: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			format:   DateLayoutISO,
		},
		{
			name:     "European format",
			input:    "01.09.2025",
			expected: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			format:   DateLayoutEuropean,
		},
		{
			name:     "Indian format",
			input:    "01/09/2025",
			expected: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			format:   DateLayoutIndian,
		},
		{
			name:     "full timestamp",
			input:    "2025-09-01 13:45:00",
			expected: time.Date(2025, 9, 1, 13, 45, 0, 0, time.UTC),
			format:   DateLayoutFull,
		},
		{
			name:     "surrounding whitespace",
			input:    "  2025-09-01  ",
			expected: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			format:   DateLayoutISO,
		},
		{
			name:     "month name",
			input:    "Sep 1, 2025",
			expected: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			format:   "Jan 2, 2006",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, format, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "2025-13-40", "32/13/2025"} {
		_, _, err := ParseDate(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestToISODate(t *testing.T) {
	date := time.Date(2025, 9, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-09-01", ToISODate(date))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "Sep 1, 2025", CleanDateString("  Sep   1,   2025  "))
	assert.Equal(t, "2025-09-01", CleanDateString("2025-09-01"))
	assert.Equal(t, "", CleanDateString("   "))
}

func TestStartOfMonth(t *testing.T) {
	date := time.Date(2025, 9, 17, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(date))
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		input    time.Time
		expected time.Time
	}{
		{
			time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, EndOfMonth(tt.input))
	}
}
