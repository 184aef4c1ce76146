package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/diacritice/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/diacritice/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP restoration server",
	Long: `Start the HTTP server exposing the restoration endpoint.

Endpoints:
  POST /api/diacritice                 {"text": "..."} -> {"text": "...", "engine": "..."}
  POST /.netlify/functions/diacritice  same, for existing web clients
  GET  /healthz                        engine status

With --watch, changes to config.toml and the prompt files are picked up
without a restart. With --check-model, the external model is pinged before
listening and dropped if it does not answer.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from settings, :8080)")
	serveCmd.Flags().Bool("watch", false, "Reload settings when the config file changes")
	serveCmd.Flags().Bool("check-model", false, "Ping the external model before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if app == nil || app.Restore == nil || app.Settings == nil {
		return errServicesNotConfigured
	}

	addr, err := serveAddr(cmd)
	if err != nil {
		return err
	}

	server, err := httpapi.NewServer(app.Restore)
	if err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch") //nolint:errcheck // flag is registered
	if watch && app.Watcher == nil {
		return fmt.Errorf("--watch is not supported with this configuration")
	}

	if check, _ := cmd.Flags().GetBool("check-model"); check { //nolint:errcheck // flag is registered
		if err := checkModel(app); err != nil {
			logger.Error("External model check failed, serving with the heuristic engine: %v", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return server.Run(ctx, addr)
	})
	if watch {
		g.Go(func() error {
			return app.Watcher.Watch(ctx, func() {
				if err := reloadServices(app); err != nil {
					logger.Warn("Reload failed: %v", err)
				}
			})
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s (external model: %t)\n", addr, app.Restore.ExternalEnabled())
	return g.Wait()
}

// serveAddr resolves the listen address from the flag or settings.
func serveAddr(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("addr") {
		return cmd.Flags().GetString("addr")
	}
	settings, err := app.Settings.Get()
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	if settings.Server.Addr == "" {
		return app.Settings.GetDefaults().Server.Addr, nil
	}
	return settings.Server.Addr, nil
}
