package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/claude2gemini/internal/config"
	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/logging"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.AIConfig
		wantType any
		wantErr  bool
	}{
		{
			name:     "no key disables",
			cfg:      config.AIConfig{Provider: config.ProviderGemini},
			wantType: Disabled{},
		},
		{
			name:     "anthropic key from the other provider does not count",
			cfg:      config.AIConfig{Provider: config.ProviderGemini, AnthropicAPIKey: "sk-ant-x"},
			wantType: Disabled{},
		},
		{
			name:     "anthropic",
			cfg:      config.AIConfig{Provider: config.ProviderAnthropic, AnthropicAPIKey: "sk-ant-x"},
			wantType: &Client{},
		},
		{
			name:    "unknown provider",
			cfg:     config.AIConfig{Provider: "openai", GeminiAPIKey: "k"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := New(context.Background(), tt.cfg, logging.ForTest(t))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, svc)
		})
	}
}

func TestDisabled(t *testing.T) {
	var svc Service = Disabled{}

	_, err := svc.AnalyzeTree(context.Background(), "tree", "/root")
	assert.True(t, errors.Is(err, ErrNoCredentials))

	_, err = svc.Refine(context.Background(), "i", "body")
	assert.True(t, errors.Is(err, ErrNoCredentials))
}

func TestPassthrough(t *testing.T) {
	got := Passthrough("body")
	assert.Equal(t, "body", got.Content)
	assert.NotNil(t, got.ExtractedFiles)
	assert.Empty(t, got.ExtractedFiles)
}
