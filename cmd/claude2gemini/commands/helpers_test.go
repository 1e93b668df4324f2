package commands

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thoreinstein/claude2gemini/internal/config"
)

// resetFlags restores every flag to its default so tests do not leak state
// through the package-level command tree.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, c := range []*cobra.Command{rootCmd, convertCmd, versionCmd} {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				if err := f.Value.Set(f.DefValue); err != nil {
					t.Fatalf("resetting --%s: %v", f.Name, err)
				}
				f.Changed = false
			})
		}
	}
}

// isolate points config discovery at an empty directory and clears AI
// credentials.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.ConfigDirEnv, t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv(config.EnvPrefix+"_AI_GEMINI_API_KEY", "")
	t.Setenv(config.EnvPrefix+"_AI_ANTHROPIC_API_KEY", "")
	t.Setenv(debugEnv, "")
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	isolate(t)

	origLogger := slog.Default()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		slog.SetDefault(origLogger)
		resetFlags(t)
	})

	err := rootCmd.Execute()
	return out.String(), err
}
