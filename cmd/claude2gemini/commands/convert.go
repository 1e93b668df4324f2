package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claude2gemini/internal/ai"
	"github.com/thoreinstein/claude2gemini/internal/convert"
	"github.com/thoreinstein/claude2gemini/internal/errors"
	"github.com/thoreinstein/claude2gemini/internal/logging"
)

var (
	convertInput  string
	convertOutput string
	convertForce  bool
	convertPlugin bool
	convertAgents bool
	convertReport string
)

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "",
		"path to a Claude plugin, agents directory or agent file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "",
		"directory the skills are written to (default from config: ../.gemini/skills)")
	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false,
		"overwrite existing skill directories")
	convertCmd.Flags().BoolVarP(&convertPlugin, "plugin", "p", true,
		"merge the whole plugin into a single skill")
	convertCmd.Flags().BoolVarP(&convertAgents, "agents", "a", false,
		"convert each agent into its own skill")
	convertCmd.Flags().StringVar(&convertReport, "report", "",
		"write a TOML run report to this file")

	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Claude plugin or agents into Gemini skills",
	Long: `Convert reads a Claude plugin, a directory of agents or a single agent
file and writes Gemini skills.

In plugin mode (the default) the directory tree is classified by the AI
model, which requires GEMINI_API_KEY (or ANTHROPIC_API_KEY with
ai.provider: anthropic). In agents mode every markdown file below the input
becomes its own skill; without an API key the agent prompts are used as
written.

Existing skill directories are left untouched unless --force is given.`,
	Example: `  claude2gemini convert -i ./my-plugin
  claude2gemini convert -i ./my-plugin -o ~/.gemini/skills --force
  claude2gemini convert -i ./agents --agents --report run.toml`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	if convertInput == "" {
		return errors.NewUserError(errors.ErrMissingInput, "Pass the plugin or agent path with -i/--input")
	}

	cfg := currentConfig()
	output := cfg.Output
	if cmd.Flags().Changed("output") {
		output = convertOutput
	}

	svc, err := ai.New(cmd.Context(), cfg.AI, logger)
	if err != nil {
		return errors.NewConfigError(err)
	}

	conv, err := convert.New(convert.Options{
		Input:  convertInput,
		Output: output,
		Force:  convertForce,
		Mode:   resolveMode(cmd, logger),
	}, svc, logger)
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	report, convErr := conv.Convert(cmd.Context())
	if convErr == nil && !quiet {
		convert.PrintSummary(cmd.OutOrStdout(), report)
	}

	if convertReport != "" && report != nil {
		if err := report.WriteTOML(convertReport); err != nil {
			logger.Error("failed to write report", "path", convertReport, "error", err)
			if convErr == nil {
				return errors.NewSystemError(err, "Check that the --report location is writable")
			}
		} else {
			logger.Info("Wrote report", "path", convertReport)
		}
	}

	if convErr != nil {
		return convertError(convErr)
	}
	return nil
}

// resolveMode picks the conversion mode. --agents always wins.
func resolveMode(cmd *cobra.Command, logger *slog.Logger) convert.Mode {
	if convertAgents {
		if cmd.Flags().Changed("plugin") && convertPlugin {
			logger.Warn("both --plugin and --agents given; converting agents")
		}
		return convert.ModeAgents
	}
	return convert.ModePlugin
}

// convertError maps a fatal conversion error to an exit error.
func convertError(err error) error {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return errors.NewUserError(err, "Check the path passed with --input")
	case errors.Is(err, errors.ErrUnknownInput):
		return errors.NewUserError(err, "Point --input at a plugin directory, a directory of agent .md files or a single agent file")
	case errors.Is(err, ai.ErrNoCredentials):
		return errors.NewSystemError(err, "Set GEMINI_API_KEY (or ANTHROPIC_API_KEY) to analyze plugins, or use --agents")
	default:
		return errors.NewSystemError(err, "")
	}
}
