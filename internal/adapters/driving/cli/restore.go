package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/diacritice/internal/logger"
)

// restoreOutput is the --json output format.
type restoreOutput struct {
	Text   string `json:"text"`
	Engine string `json:"engine"`
}

var restoreCmd = &cobra.Command{
	Use:   "restore [text]",
	Short: "Restore diacritics in text",
	Long: `Restore Romanian diacritics in the given text.

Text is taken from the arguments, or read from stdin when no arguments are
given and stdin is not a terminal.

Examples:
  diacritice restore "Si ai vazut ca intre timp a plecat?"
  cat article.txt | diacritice restore > article.ro.txt
  diacritice restore --heuristic-only --json "Sapte zile"`,
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().Bool("json", false, "Print the result as JSON with the engine used")
	restoreCmd.Flags().Bool("heuristic-only", false, "Skip the external model")
	restoreCmd.Flags().Int("max-chunk-size", 0, "Override the chunk size in characters")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	if app == nil || app.Restore == nil {
		return errServicesNotConfigured
	}

	text, err := restoreInput(cmd, args)
	if err != nil {
		return err
	}

	cfg := app.Restore.Config()
	if heuristicOnly, _ := cmd.Flags().GetBool("heuristic-only"); heuristicOnly { //nolint:errcheck // flag is registered
		cfg.HasCredential = false
	}
	if cmd.Flags().Changed("max-chunk-size") {
		size, _ := cmd.Flags().GetInt("max-chunk-size") //nolint:errcheck // flag is registered
		cfg.MaxChunkSize = size
	}

	logger.Section("Restore")
	logger.Debug("Input: %d bytes, external=%t", len(text), cfg.HasCredential)

	result, err := app.Restore.RestoreWithConfig(cmd.Context(), text, cfg)
	if err != nil {
		return err
	}
	logger.Debug("Engine: %s", result.Engine)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON { //nolint:errcheck // flag is registered
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		return enc.Encode(restoreOutput{Text: result.Text, Engine: result.Engine.WireName()})
	}

	out := result.Text
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// restoreInput returns the text to restore from args or stdin.
func restoreInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no text given: pass it as an argument or pipe it to stdin")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
