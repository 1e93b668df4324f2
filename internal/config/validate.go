package config

import (
	"strconv"
	"strings"

	"github.com/thoreinstein/claude2gemini/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidProvider indicates an unrecognized AI provider name.
	ErrInvalidProvider = errors.New("invalid ai provider")

	// ErrNegativeValue indicates a numeric setting below zero.
	ErrNegativeValue = errors.New("must not be negative")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	switch cfg.AI.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		errs = append(errs, &FieldError{
			Field: "ai.provider",
			Value: cfg.AI.Provider,
			Err:   ErrInvalidProvider,
		})
	}

	if cfg.AI.Retry.Attempts < 0 {
		errs = append(errs, &FieldError{Field: "ai.retry.attempts", Value: strconv.Itoa(cfg.AI.Retry.Attempts), Err: ErrNegativeValue})
	}
	if cfg.AI.Retry.Delay < 0 {
		errs = append(errs, &FieldError{Field: "ai.retry.delay", Value: cfg.AI.Retry.Delay.String(), Err: ErrNegativeValue})
	}
	if cfg.AI.Timeout < 0 {
		errs = append(errs, &FieldError{Field: "ai.timeout", Value: cfg.AI.Timeout.String(), Err: ErrNegativeValue})
	}
	if cfg.AI.MaxTokens < 0 {
		errs = append(errs, &FieldError{Field: "ai.max_tokens", Value: strconv.FormatInt(cfg.AI.MaxTokens, 10), Err: ErrNegativeValue})
	}

	if cfg.Output != "" {
		if err := validatePath(cfg.Output); err != nil {
			errs = append(errs, &FieldError{
				Field: "output",
				Value: cfg.Output,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific configuration field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
