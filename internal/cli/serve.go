package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/example/hive/internal/adapters/httpapi"
	"github.com/example/hive/internal/version"
	"github.com/example/hive/internal/wire"
)

const shutdownTimeout = 15 * time.Second

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Serve the hive and section API over HTTP until SIGINT or SIGTERM.

The listen address comes from listen_addr in .hive/config.yaml,
HIVE_LISTEN_ADDR, or --addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services := wire.Get()
			defer services.Close()

			if addr == "" {
				addr = services.Config.ListenAddr
			}

			logger := log.With().Str("component", "serve").Logger()
			logger.Info().
				Str("version", version.Version).
				Str("commit", version.Commit).
				Str("driver", services.Config.Driver).
				Msg("starting hive")

			var opts []httpapi.Option
			if services.Metrics != nil {
				opts = append(opts, httpapi.WithMetrics(services.Metrics))
			}
			srv := httpapi.New(services.Hives, services.Sections, services.Store, log.Logger, opts...)

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			errCh := make(chan error, 1)
			go func() {
				logger.Info().Str("addr", addr).Msg("HTTP server listening")
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			var serveErr error
			select {
			case sig := <-sigCh:
				logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
			case err := <-errCh:
				serveErr = fmt.Errorf("http server: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("HTTP server shutdown error")
			}
			logger.Info().Msg("server stopped")

			return serveErr
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
