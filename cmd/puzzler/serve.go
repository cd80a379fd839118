package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aretw0/puzzler"
	httpAdapter "github.com/aretw0/puzzler/pkg/adapters/http"
	"github.com/aretw0/puzzler/pkg/observability"
	"github.com/spf13/cobra"
)

const shutdownGrace = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes solve, apply, cost and play as a JSON API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.cfg
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTP.Addr = addr
		}
		logger := app.logger

		var metrics *observability.Metrics
		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithPlayInterval(cfg.Play.Interval),
			httpAdapter.WithInfo(puzzler.Version, puzzler.Puzzles()),
		}
		if cfg.Metrics.Enabled {
			metrics = observability.NewMetrics(true)
			opts = append(opts, httpAdapter.WithMetrics(metrics.Handler()))
		}

		solver, closeStore, err := newSolver(metrics)
		if err != nil {
			return err
		}
		defer closeStore()

		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           httpAdapter.NewHandler(solver, opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting server", "addr", srv.Addr, "store", cfg.Store.Driver, "metrics", cfg.Metrics.Enabled)
			serverErrors <- srv.ListenAndServe()
		}()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil

		case <-cmd.Context().Done():
			logger.Info("shutting down")

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "grace", shutdownGrace, "error", err)
				return srv.Close()
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}
