// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	MonthLayoutISO     = "2006-01"
	DateLayoutEuropean = "02.01.2006"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	"02/01/2006",
	"2006/01/02",
}

// ParseDate attempts to parse a date string using multiple common formats
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// YearMonth extracts the YYYY-MM component of an ISO date string
func YearMonth(dateStr string) (string, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(dateStr))
	if err != nil {
		return "", fmt.Errorf("unable to parse ISO date: %s", dateStr)
	}
	return t.Format(MonthLayoutISO), nil
}

// IsValidMonth reports whether the string is a valid YYYY-MM month
func IsValidMonth(month string) bool {
	_, err := time.Parse(MonthLayoutISO, month)
	return err == nil
}
