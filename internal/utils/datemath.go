package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC-midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a time as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Today returns the current civil date at UTC midnight.
func Today() time.Time {
	return Midnight(time.Now().UTC())
}

// Midnight truncates a time to its civil date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts the civil days in [start, end], both endpoints
// included. The caller must ensure end >= start; no clamping happens here.
func DaysInclusive(start, end time.Time) int {
	return int(Midnight(end).Sub(Midnight(start)).Hours()/24) + 1
}

// OverlapDays returns the inclusive civil-day overlap between the closed
// intervals [aStart, aEnd] and [bStart, bEnd]. Always >= 0.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	start := Midnight(aStart)
	if b := Midnight(bStart); b.After(start) {
		start = b
	}
	end := Midnight(aEnd)
	if b := Midnight(bEnd); b.Before(end) {
		end = b
	}
	if end.Before(start) {
		return 0
	}
	return DaysInclusive(start, end)
}
