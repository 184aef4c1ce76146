package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/diacritice/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/diacritice/internal/core/services"
	"github.com/custodia-labs/diacritice/internal/heuristic"
	"github.com/custodia-labs/diacritice/internal/normalisers/romanian"
)

// newTestServices wires services on an in-memory config store with no
// external model and an empty environment.
func newTestServices(t *testing.T) (*Services, *memory.ConfigStore) {
	t.Helper()

	store := memory.NewConfigStore()
	settingsSvc := services.NewSettingsService(store, nil)
	settingsSvc.SetEnvLookup(nil)

	settings, err := settingsSvc.Get()
	require.NoError(t, err)

	return &Services{
		Restore:  services.NewRestoreService(nil, heuristic.New(), romanian.New(), *settings),
		Settings: settingsSvc,
		Actions:  services.NewResultActionService(nil),
	}, store
}

// executeCommand runs the root command with s injected and returns the
// combined output.
func executeCommand(t *testing.T, s *Services, stdin string, args ...string) (string, error) {
	t.Helper()

	SetServices(s)
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		SetServices(nil)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default. Cobra keeps parsed flag
// values between executions of the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue) //nolint:errcheck // defaults always parse
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
