// Package errors provides error handling conventions for the claude2gemini CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, exit code constants
// following standard Unix conventions, and thin wrappers around
// github.com/cockroachdb/errors (New, Newf, Wrap, Wrapf, Is, As).
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrMissingInput) {
//	    // handle missing --input
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (missing input, unknown input, bad config)
//   - ExitSystem (2): System-related error (I/O, AI service failure)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion.
// [ExitCode] extracts the code from any error chain:
//
//	err := errors.NewUserError(errors.ErrMissingInput, "Pass --input <path>")
//	os.Exit(errors.ExitCode(err))
package errors
