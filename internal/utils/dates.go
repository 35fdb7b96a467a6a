package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd string in UTC.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}
	return t, nil
}

// ValidateDateRange checks that end falls strictly after start and returns
// the number of nights between them.
func ValidateDateRange(start, end time.Time) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, fmt.Errorf("start and end dates are required")
	}
	if !end.After(start) {
		return 0, fmt.Errorf("end date must be after start date")
	}
	return int(end.Sub(start).Hours() / 24), nil
}
