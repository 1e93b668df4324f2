// Package main is the entry point for the claude2gemini CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/claude2gemini/cmd/claude2gemini/commands"
	"github.com/thoreinstein/claude2gemini/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
	}
	os.Exit(errors.ExitCode(err))
}
