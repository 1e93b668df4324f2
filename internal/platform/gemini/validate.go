package gemini

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation failure for a specific field.
type ValidationError struct {
	Field   string
	Message string
	Value   string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s %q: %s", e.Field, e.Value, e.Message)
}

// Validate checks that a skill can be written.
// Returns a slice of validation errors, or nil if valid.
func Validate(s *Skill) []error {
	if s == nil {
		return []error{&ValidationError{Field: "skill", Message: "skill is nil"}}
	}

	var errs []error

	switch {
	case strings.TrimSpace(s.Name) == "":
		errs = append(errs, &ValidationError{Field: "name", Message: "name is required"})
	case strings.ContainsAny(s.Name, `/\`):
		errs = append(errs, &ValidationError{Field: "name", Message: "name cannot contain path separators", Value: s.Name})
	case s.Name == "." || s.Name == "..":
		errs = append(errs, &ValidationError{Field: "name", Message: "name cannot be a relative directory", Value: s.Name})
	}

	if strings.TrimSpace(s.Description) == "" {
		errs = append(errs, &ValidationError{Field: "description", Message: "description is required"})
	}

	if strings.TrimSpace(s.Instructions) == "" {
		errs = append(errs, &ValidationError{Field: "instructions", Message: "instructions are required"})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
