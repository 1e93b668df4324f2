// Package ai provides the delegated AI capability used during conversion.
//
// A Service classifies the files of a rendered directory tree and rewrites
// markdown while extracting reusable blocks into separate files. Client
// implements Service on top of a provider Generator: GeminiClient for the
// Gemini API and AnthropicClient for the Anthropic Messages API. When no
// credential is configured, New returns Disabled, whose calls fail with
// ErrNoCredentials so callers can fall back to the unrefined content.
//
// Transient provider failures are retried with exponential backoff when
// retries are configured:
//
//	svc := ai.NewClient(gen,
//		ai.WithTimeout(30*time.Second),
//		ai.WithRetry(3, time.Second),
//	)
package ai
