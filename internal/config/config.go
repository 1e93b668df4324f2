// Package config provides configuration management for claude2gemini using Viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CLAUDE2GEMINI"

// ConfigDirEnv overrides the user config directory.
const ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"

// Supported AI providers.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Default models per provider.
const (
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultAnthropicModel = "claude-sonnet-4-5"
)

// Config represents the top-level configuration structure.
type Config struct {
	Output string   `mapstructure:"output" yaml:"output"`
	AI     AIConfig `mapstructure:"ai" yaml:"ai"`
}

// AIConfig configures the delegated AI service.
type AIConfig struct {
	Provider        string        `mapstructure:"provider" yaml:"provider"`
	Model           string        `mapstructure:"model" yaml:"model"`
	GeminiAPIKey    string        `mapstructure:"gemini_api_key" yaml:"gemini_api_key"`
	AnthropicAPIKey string        `mapstructure:"anthropic_api_key" yaml:"anthropic_api_key"`
	MaxTokens       int64         `mapstructure:"max_tokens" yaml:"max_tokens"`
	Timeout         time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Retry           RetryConfig   `mapstructure:"retry" yaml:"retry"`
}

// RetryConfig controls retries of AI calls. Attempts of 1 disables retrying.
type RetryConfig struct {
	Attempts int           `mapstructure:"attempts" yaml:"attempts"`
	Delay    time.Duration `mapstructure:"delay" yaml:"delay"`
}

// ResolvedModel returns the configured model or the provider default.
func (c AIConfig) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderAnthropic {
		return DefaultAnthropicModel
	}
	return DefaultGeminiModel
}

// APIKey returns the credential for the configured provider.
func (c AIConfig) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.GeminiAPIKey
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Any previous Viper state is discarded.
func Init() {
	viper.Reset()

	// Environment variable support
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Provider keys also come from their conventional variables.
	_ = viper.BindEnv("ai.gemini_api_key", EnvPrefix+"_AI_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = viper.BindEnv("ai.anthropic_api_key", EnvPrefix+"_AI_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")

	// Defaults
	viper.SetDefault("output", paths.DefaultOutputDir)
	viper.SetDefault("ai.provider", ProviderGemini)
	viper.SetDefault("ai.model", "")
	viper.SetDefault("ai.max_tokens", 8192)
	viper.SetDefault("ai.timeout", time.Duration(0))
	viper.SetDefault("ai.retry.attempts", 1)
	viper.SetDefault("ai.retry.delay", time.Second)
}

// SearchPaths returns the implicit config file locations in lookup order.
func SearchPaths() []string {
	dir := paths.AppConfigDir()
	if override := os.Getenv(ConfigDirEnv); override != "" {
		dir = override
	}
	return []string{
		AppName + ".yaml",
		filepath.Join(dir, "config.yaml"),
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it uses the first existing file from SearchPaths.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range SearchPaths() {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				path = candidate
				break
			}
		}
		if path == "" {
			return unmarshal()
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return unmarshal()
}

func unmarshal() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// LoadDotEnv loads the nearest .env file found in dir or any of its parents.
// Variables already present in the environment are never overridden.
// It returns the path of the loaded file, or "" when none was found.
func LoadDotEnv(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", dir)
	}

	for {
		candidate := filepath.Join(abs, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			if err := godotenv.Load(candidate); err != nil {
				return "", errors.Wrapf(err, "loading %s", candidate)
			}
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}
		abs = parent
	}
}
