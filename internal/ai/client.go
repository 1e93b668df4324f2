package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/thoreinstein/claude2gemini/internal/analyzer"
	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/logging"
)

// maxRetryDelay caps the backoff between attempts.
const maxRetryDelay = 30 * time.Second

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing and retry warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds each model call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetry retries transient failures up to attempts total calls with
// exponential backoff starting at delay. Attempts of 0 or 1 disable retries.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// Client implements Service on top of a Generator. It builds the prompts,
// parses the JSON answers and handles timeouts and retries.
type Client struct {
	gen      Generator
	logger   *slog.Logger
	timeout  time.Duration
	attempts int
	delay    time.Duration
}

// NewClient creates a Client with the given options.
func NewClient(gen Generator, opts ...Option) *Client {
	c := &Client{
		gen:      gen,
		logger:   slog.Default(),
		attempts: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AnalyzeTree implements Service.
func (c *Client) AnalyzeTree(ctx context.Context, tree, root string) (*analyzer.Analysis, error) {
	text, err := c.generate(ctx, AnalyzePrompt(tree, root))
	if err != nil {
		return nil, errors.Wrap(err, "analyzing directory tree")
	}
	analysis, err := ParseAnalysis(text)
	if err != nil {
		return nil, errors.Wrap(err, "analyzing directory tree")
	}
	return analysis, nil
}

// Refine implements Service.
func (c *Client) Refine(ctx context.Context, instruction, body string) (*RefineResult, error) {
	text, err := c.generate(ctx, RefinePrompt(instruction, body))
	if err != nil {
		return nil, errors.Wrap(err, "refining content")
	}
	result, err := ParseRefineResult(text)
	if err != nil {
		return nil, errors.Wrap(err, "refining content")
	}
	return result, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	c.logger.Log(ctx, logging.LevelTrace, "sending prompt", "chars", len(prompt))

	var text string
	call := func() error {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
		out, err := c.gen.Generate(callCtx, prompt)
		if err != nil {
			return err
		}
		text = out
		return nil
	}

	if c.attempts <= 1 {
		if err := call(); err != nil {
			return "", err
		}
	} else {
		var originalErrors []error
		err := retry.Do(
			func() error {
				err := call()
				if err != nil {
					originalErrors = append(originalErrors, err)
				}
				return err
			},
			retry.RetryIf(isRetryableError),
			retry.Attempts(uint(c.attempts)),
			retry.Delay(c.delay),
			retry.DelayType(retry.BackOffDelay),
			retry.MaxDelay(maxRetryDelay),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				c.logger.Warn("retrying AI call", "attempt", n+1, "max_attempts", c.attempts, "error", err)
			}),
		)
		if err != nil {
			return "", errors.Wrapf(err, "AI call failed after %d attempt(s)", len(originalErrors))
		}
	}

	c.logger.Log(ctx, logging.LevelTrace, "received response", "chars", len(text))
	return text, nil
}

// isRetryableError reports whether err looks transient.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	retryablePatterns := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"temporary failure",
		"service unavailable",
		"internal error",
		"overloaded",
		"rate limit",
		"too many requests",
		"429",
		"500",
		"502",
		"503",
		"529",
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}
