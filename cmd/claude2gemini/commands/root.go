// Package commands implements the CLI commands for claude2gemini.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude2gemini/cmd"
	"github.com/thoreinstein/claude2gemini/internal/config"
	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/logging"
	"github.com/thoreinstein/claude2gemini/internal/paths"
)

// debugEnv enables debug logging when set to 1 or true, trace when set to 2.
const debugEnv = config.EnvPrefix + "_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the configuration read by initConfig.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./claude2gemini.yaml or ~/.config/claude2gemini/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate(paths.AppName + " version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewUserError(err, "Run '"+c.CommandPath()+" --help' for usage")
	})
}

func initConfig() {
	// Credentials in a .env file are visible to the config layer below.
	if path, err := config.LoadDotEnv("."); err != nil {
		configLoadErr = err
		return
	} else if path != "" {
		slog.Debug("loaded environment file", "path", path)
	}

	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   paths.AppName,
	Short: "Convert Claude plugins and agents into Gemini skills",
	Long: `claude2gemini converts Claude Code plugins, skills and agents into
Gemini CLI skills.

A plugin becomes a single skill: agents are merged into persona sections of
SKILL.md and skills become workflow references. With --agents every agent
file becomes a skill of its own. An AI model (Gemini or Anthropic) classifies
the plugin layout and rewrites agent prompts; without an API key agent
prompts are kept as written.`,
	Example: `  # Convert a plugin into ../.gemini/skills/<name>
  claude2gemini convert -i ./my-plugin

  # Convert every agent into its own skill, replacing earlier output
  claude2gemini convert -i ./agents -o ./skills --agents --force

  See Also: claude2gemini convert --help`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q and -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logging.ReplaceLevelAttr,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a config load failure for commands that need config.
func checkConfig(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// currentConfig returns the loaded configuration, or defaults if loading was
// skipped.
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return &config.Config{
		Output: paths.DefaultOutputDir,
		AI: config.AIConfig{
			Provider: config.ProviderGemini,
			Retry:    config.RetryConfig{Attempts: 1},
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
