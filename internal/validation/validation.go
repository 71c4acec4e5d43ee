// Package validation holds the client-side form checks that run before
// any network call is issued. A validation failure never reaches the
// backend.
package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
	"github.com/arun-chaudhary3116/HabitMate/internal/models"
)

// MinPasswordLength matches the backend's registration requirement.
const MinPasswordLength = 8

// Required rejects empty or whitespace-only values.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// Email checks that the value parses as an address.
func Email(value string) error {
	if err := Required("email", value); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// Password enforces the minimum length for new passwords.
func Password(value string) error {
	if len(value) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// Category checks the value against the fixed category list.
func Category(value string) error {
	if err := Required("category", value); err != nil {
		return err
	}
	for _, c := range constants.Categories {
		if value == c {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", value)
}

// Color checks the value against the fixed color tokens.
func Color(value string) error {
	for _, c := range constants.Colors {
		if value == c.Value {
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", value)
}

// Mood checks the value against the fixed mood tags.
func Mood(value string) error {
	if !models.ValidMood(models.Mood(value)) {
		return fmt.Errorf("unknown mood %q", value)
	}
	return nil
}

// HabitFields runs every check the add-habit form requires: name, goal
// and category must be present, category and color must be known.
func HabitFields(name, goal, category, color string) error {
	if err := Required("name", name); err != nil {
		return err
	}
	if err := Required("goal", goal); err != nil {
		return err
	}
	if err := Category(category); err != nil {
		return err
	}
	return Color(color)
}
