package ai

import (
	"context"

	"github.com/thoreinstein/claude2gemini/internal/analyzer"
)

// Disabled is the Service used when no credential is configured.
// Every call fails with ErrNoCredentials.
type Disabled struct{}

// AnalyzeTree implements Service.
func (Disabled) AnalyzeTree(context.Context, string, string) (*analyzer.Analysis, error) {
	return nil, ErrNoCredentials
}

// Refine implements Service.
func (Disabled) Refine(context.Context, string, string) (*RefineResult, error) {
	return nil, ErrNoCredentials
}
