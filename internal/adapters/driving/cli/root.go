// Package cli provides the cobra command tree for diacritice.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/diacritice/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flag values.
var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "diacritice",
	Short: "Restore Romanian diacritics",
	Long: `diacritice restores Romanian diacritics (ă, â, î, ș, ț) in text written
without them.

Text is sent to a hosted restoration model when a token is configured
(HF_TOKEN or 'diacritice settings set-model'). Without a token, or when the
model fails, a local rule-based restorer is used instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (skipsServices refers to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if skipsServices(cmd) {
			return nil
		}
		return ensureServices(configDir)
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.diacritice)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

// skipsServices reports whether cmd runs without application services.
func skipsServices(cmd *cobra.Command) bool {
	if cmd == rootCmd {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion":
			return true
		}
	}
	return false
}

// errServicesNotConfigured is returned by commands run before wiring.
var errServicesNotConfigured = errors.New("services not configured")
