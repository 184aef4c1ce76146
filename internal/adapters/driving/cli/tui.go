package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/diacritice/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for diacritice.

Type or paste text in the left pane and restore it into the right pane.

Controls:
  ctrl+s   - Restore diacritics
  ctrl+y   - Copy the restored text
  ctrl+l   - Clear both panes
  tab      - Switch pane
  f1       - Toggle help
  ctrl+q   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the wired services.
func tuiPorts() (*tui.Ports, error) {
	if app == nil || app.Restore == nil {
		return nil, errServicesNotConfigured
	}
	ports := tui.NewPorts(app.Restore, nil)
	if app.Actions != nil {
		ports.ResultAction = app.Actions
	}
	return ports, nil
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	ports, err := tuiPorts()
	if err != nil {
		return err
	}

	tuiApp, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	tuiApp.WithContext(cmd.Context())

	p := tea.NewProgram(tuiApp, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
