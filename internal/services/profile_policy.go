package services

import (
	"errors"
	"strings"

	"github.com/fallowfield/lendora/internal/models"
)

var (
	ErrInvalidAge        = errors.New("invalid age")
	ErrInvalidIncome     = errors.New("invalid income")
	ErrInvalidEmployment = errors.New("invalid employment status")
)

const (
	MinProfileAge = 18
	MaxProfileAge = 100
)

// NormalizeEmploymentStatus maps form input onto the canonical lowercase
// status labels; an empty result means the value is not one of the offered
// options.
func NormalizeEmploymentStatus(raw string) string {
	status := strings.ToLower(strings.TrimSpace(raw))
	for _, known := range models.EmploymentStatuses() {
		if status == known {
			return known
		}
	}
	return ""
}

func ValidateProfileInput(age int, income float64, employmentStatus string) error {
	if age < MinProfileAge || age > MaxProfileAge {
		return ErrInvalidAge
	}
	if income < 0 {
		return ErrInvalidIncome
	}
	if NormalizeEmploymentStatus(employmentStatus) == "" {
		return ErrInvalidEmployment
	}
	return nil
}
