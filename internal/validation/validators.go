package validation

import (
	"fmt"
	"strings"
	"unicode"

	"petminder/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	// These should never fail in normal operation, but log if they do
	if err := Validate.RegisterValidation("task_type", validateTaskType); err != nil {
		panic(fmt.Sprintf("failed to register task_type validator: %v", err))
	}
	if err := Validate.RegisterValidation("theme", validateTheme); err != nil {
		panic(fmt.Sprintf("failed to register theme validator: %v", err))
	}
}

// validateTaskType validates that a string is a valid TaskType enum value
func validateTaskType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch models.TaskType(value) {
	case models.TaskTypeMedication, models.TaskTypeNailCare, models.TaskTypeEarCare, models.TaskTypeOther:
		return true
	default:
		return false
	}
}

// validateTheme validates that a string is a valid Theme enum value
func validateTheme(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch models.Theme(value) {
	case models.ThemeLight, models.ThemeDark:
		return true
	default:
		return false
	}
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateTaskType validates a TaskType string value
func ValidateTaskType(value string) error {
	tt := models.TaskType(value)
	switch tt {
	case models.TaskTypeMedication, models.TaskTypeNailCare, models.TaskTypeEarCare, models.TaskTypeOther:
		return nil
	default:
		return fmt.Errorf("invalid task type: %s (must be 'medication', 'nail-care', 'ear-care', or 'other')", value)
	}
}

// ValidateTheme validates a Theme string value
func ValidateTheme(value string) error {
	theme := models.Theme(value)
	switch theme {
	case models.ThemeLight, models.ThemeDark:
		return nil
	default:
		return fmt.Errorf("invalid theme: %s (must be 'light' or 'dark')", value)
	}
}
