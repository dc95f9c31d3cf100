package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidateID parses a positive integer identifier from a path or query
// parameter.
func ValidateID(idStr string, fieldName string) (int64, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return 0, fmt.Errorf("%s is required", fieldName)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", fieldName)
	}
	return id, nil
}

// ValidateYear parses a four-digit calendar year.
func ValidateYear(yearStr string) (int, error) {
	yearStr = strings.TrimSpace(yearStr)
	if yearStr == "" {
		return 0, fmt.Errorf("year is required")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, fmt.Errorf("year must be an integer")
	}
	if year < 1000 || year > 9999 {
		return 0, fmt.Errorf("year must be a four-digit year")
	}
	return year, nil
}

// ValidatePositiveInteger validates an integer is positive and within limit
func ValidatePositiveInteger(value int, fieldName string, maxValue int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	if maxValue > 0 && value > maxValue {
		return fmt.Errorf("%s cannot exceed %d", fieldName, maxValue)
	}
	return nil
}

// ValidateNonNegativeFloat validates a float is not negative and within limit
func ValidateNonNegativeFloat(value float64, fieldName string, maxValue float64) error {
	if value < 0 {
		return fmt.Errorf("%s cannot be negative", fieldName)
	}
	if maxValue > 0 && value > maxValue {
		return fmt.Errorf("%s cannot exceed %.2f", fieldName, maxValue)
	}
	return nil
}

// ValidateDateFormat validates a YYYY-MM-DD date string and returns the
// parsed date.
func ValidateDateFormat(dateStr string, fieldName string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format", fieldName)
	}
	return date, nil
}

// ValidatePastOrPresentDate rejects dates in the future, used for join and
// hire dates.
func ValidatePastOrPresentDate(date time.Time, fieldName string) error {
	if date.After(time.Now()) {
		return fmt.Errorf("%s cannot be in the future", fieldName)
	}
	return nil
}

// SafeString dereferences a string pointer, returning "" for nil
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
