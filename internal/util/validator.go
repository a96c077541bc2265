package util

import (
	"fmt"
	"time"
)

// ValidateMonth validates a year-month string (must be YYYY-MM).
func ValidateMonth(monthStr string) error {
	if monthStr == "" {
		return fmt.Errorf("month is empty")
	}
	_, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return fmt.Errorf("invalid month format: %w", err)
	}
	return nil
}

// ValidateDate validates a date string (must be YYYY-MM-DD).
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateRequiredText validates a required free-text field with a length cap.
func ValidateRequiredText(name, value string, max int) error {
	if value == "" {
		return fmt.Errorf("%s is empty", name)
	}
	if len(value) > max {
		return fmt.Errorf("%s too long, max %d bytes", name, max)
	}
	return nil
}
