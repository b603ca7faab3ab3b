package util

import (
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %s: %w", s, err)
	}
	return t, nil
}

// CompactDate turns "2025-07-18" into "20250718", the format the quote
// vendor's kline endpoints take for beg/end parameters.
func CompactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// MonthBounds expands "2025-07" into the month's first and last day.
func MonthBounds(month string) (string, string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse month %s: %w", month, err)
	}
	first := NewDate(t.Year(), int(t.Month()), 1)
	last := NewDate(t.Year(), int(t.Month())+1, 0)
	return FormatDate(first), FormatDate(last), nil
}
