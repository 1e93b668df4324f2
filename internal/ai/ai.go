package ai

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/claude2gemini/internal/analyzer"
	"github.com/thoreinstein/claude2gemini/internal/config"
	"github.com/thoreinstein/claude2gemini/internal/errors"
)

// Sentinel errors returned by services.
var (
	// ErrNoCredentials is returned by the Disabled service.
	ErrNoCredentials = errors.New("no AI credentials configured")

	// ErrEmptyContent is returned when a refinement has no content.
	ErrEmptyContent = errors.New("refined content is empty")

	// ErrMalformedResponse is returned when a response is not the expected JSON.
	ErrMalformedResponse = errors.New("malformed AI response")
)

// FileType tells where an extracted file goes inside the skill.
type FileType string

const (
	// FileReference files go to references/.
	FileReference FileType = "reference"

	// FileAsset files go to assets/.
	FileAsset FileType = "asset"
)

// ExtractedFile is a block of content the model moved out of the prose.
type ExtractedFile struct {
	Name    string   `json:"name"`
	Type    FileType `json:"type"`
	Content string   `json:"content"`
}

// RefineResult is the rewritten document plus the files extracted from it.
type RefineResult struct {
	Content        string          `json:"content"`
	ExtractedFiles []ExtractedFile `json:"extractedFiles"`
}

// Passthrough returns a result that keeps body unchanged with no extracted files.
func Passthrough(body string) *RefineResult {
	return &RefineResult{Content: body, ExtractedFiles: []ExtractedFile{}}
}

// Service is the delegated AI capability used by the converter.
type Service interface {
	// AnalyzeTree assigns the files of a rendered tree to agents and skills.
	// Paths in the result should be absolute under root.
	AnalyzeTree(ctx context.Context, tree, root string) (*analyzer.Analysis, error)

	// Refine rewrites body following instruction and may extract files.
	Refine(ctx context.Context, instruction, body string) (*RefineResult, error)
}

// Generator sends a single prompt to a model and returns its text output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the Service for cfg. A missing credential is not an error: a
// warning is logged and a Disabled service is returned.
func New(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	key := cfg.APIKey()
	if key == "" {
		logger.Warn("API key not found. AI features will be disabled.", "provider", cfg.Provider)
		return Disabled{}, nil
	}

	model := cfg.ResolvedModel()

	var (
		gen Generator
		err error
	)
	switch cfg.Provider {
	case config.ProviderAnthropic:
		gen, err = NewAnthropicClient(AnthropicConfig{APIKey: key, Model: model, MaxTokens: cfg.MaxTokens})
	case config.ProviderGemini, "":
		gen, err = NewGeminiClient(ctx, GeminiConfig{APIKey: key, Model: model})
	default:
		return nil, errors.Newf("unsupported ai provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("AI service ready", "provider", cfg.Provider, "model", model)

	return NewClient(gen,
		WithLogger(logger),
		WithTimeout(cfg.Timeout),
		WithRetry(cfg.Retry.Attempts, cfg.Retry.Delay),
	), nil
}
