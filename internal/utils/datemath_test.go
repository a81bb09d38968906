package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, err := ParseDate("2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2024/01/15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expected yyyy-mm-dd")
	})

	t.Run("Empty string", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}

func TestDaysInclusive(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"Single day", "2024-01-15", "2024-01-15", 1},
		{"Two days", "2024-01-15", "2024-01-16", 2},
		{"Full January", "2024-01-01", "2024-01-31", 31},
		{"Leap February", "2024-02-01", "2024-02-29", 29},
		{"Across year boundary", "2023-12-25", "2024-01-05", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInclusive(date(t, tt.start), date(t, tt.end)))
		})
	}
}

func TestOverlapDays(t *testing.T) {
	t.Run("Identical intervals equal DaysInclusive", func(t *testing.T) {
		start := date(t, "2024-03-01")
		end := date(t, "2024-03-31")
		assert.Equal(t, DaysInclusive(start, end), OverlapDays(start, end, start, end))
	})

	t.Run("Partial overlap", func(t *testing.T) {
		// Rental Jan 1-10 against window Jan 5-20 overlaps Jan 5-10.
		overlap := OverlapDays(
			date(t, "2024-01-01"), date(t, "2024-01-10"),
			date(t, "2024-01-05"), date(t, "2024-01-20"),
		)
		assert.Equal(t, 6, overlap)
	})

	t.Run("Disjoint intervals", func(t *testing.T) {
		overlap := OverlapDays(
			date(t, "2024-01-01"), date(t, "2024-01-10"),
			date(t, "2024-02-01"), date(t, "2024-02-10"),
		)
		assert.Equal(t, 0, overlap)
	})

	t.Run("Touching endpoints count one day", func(t *testing.T) {
		overlap := OverlapDays(
			date(t, "2024-01-01"), date(t, "2024-01-10"),
			date(t, "2024-01-10"), date(t, "2024-01-20"),
		)
		assert.Equal(t, 1, overlap)
	})

	t.Run("Symmetric in interval arguments", func(t *testing.T) {
		a1, a2 := date(t, "2024-01-03"), date(t, "2024-01-17")
		b1, b2 := date(t, "2024-01-10"), date(t, "2024-02-01")
		assert.Equal(t, OverlapDays(a1, a2, b1, b2), OverlapDays(b1, b2, a1, a2))
	})

	t.Run("Never negative", func(t *testing.T) {
		overlap := OverlapDays(
			date(t, "2024-06-01"), date(t, "2024-06-02"),
			date(t, "2020-01-01"), date(t, "2020-01-02"),
		)
		assert.GreaterOrEqual(t, overlap, 0)
	})
}
