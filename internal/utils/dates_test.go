package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		months   int
		expected string
	}{
		{
			name:     "Simple month addition",
			start:    "2025-01-15",
			months:   1,
			expected: "2025-02-15",
		},
		{
			name:     "January 31 clamps to February 28",
			start:    "2025-01-31",
			months:   1,
			expected: "2025-02-28",
		},
		{
			name:     "January 31 plus two months keeps day 31",
			start:    "2025-01-31",
			months:   2,
			expected: "2025-03-31",
		},
		{
			name:     "Leap year February",
			start:    "2024-01-31",
			months:   1,
			expected: "2024-02-29",
		},
		{
			name:     "Year rollover",
			start:    "2025-11-30",
			months:   3,
			expected: "2026-02-28",
		},
		{
			name:     "Zero months",
			start:    "2025-06-10",
			months:   0,
			expected: "2025-06-10",
		},
		{
			name:     "Negative months",
			start:    "2025-03-31",
			months:   -1,
			expected: "2025-02-28",
		},
		{
			name:     "Negative year rollover",
			start:    "2025-01-15",
			months:   -2,
			expected: "2024-11-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			assert.NoError(t, err)

			result := AddMonths(start, tt.months)
			assert.Equal(t, tt.expected, FormatDate(result))
		})
	}
}

func TestAddMonthsSeriesNeverOverflows(t *testing.T) {
	start, err := ParseDate("2025-01-31")
	assert.NoError(t, err)

	expected := []string{
		"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30",
		"2025-05-31", "2025-06-30", "2025-07-31", "2025-08-31",
		"2025-09-30", "2025-10-31", "2025-11-30", "2025-12-31",
	}
	for i, want := range expected {
		assert.Equal(t, want, FormatDate(AddMonths(start, i)), "month offset %d", i)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectError bool
	}{
		{name: "Valid date", value: "2025-08-01"},
		{name: "Empty string", value: "", expectError: true},
		{name: "Wrong format", value: "01/08/2025", expectError: true},
		{name: "Not a date", value: "soon", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.value)
			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, result.IsZero())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.value, FormatDate(result))
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	stamped := time.Date(2025, time.August, 14, 17, 45, 12, 999, time.FixedZone("WIB", 7*3600))
	result := DateOnly(stamped)

	assert.Equal(t, "2025-08-14", FormatDate(result))
	assert.Equal(t, time.UTC, result.Location())
	assert.Zero(t, result.Hour())
}
