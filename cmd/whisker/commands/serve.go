package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/janiskrasemann/whisker/internal/logging"
	"github.com/janiskrasemann/whisker/internal/view"
)

func serveCmd() *cobra.Command {
	var runNow bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Produce a cat card on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}

			views := view.Multi{view.NewConsole(cmd.OutOrStdout(), a.renderer, logger)}
			if a.mail != nil {
				views = append(views, a.mail)
			}
			a.vm.Attach(views)

			c := cron.New()
			if _, err := c.AddFunc(cfg.Schedule, a.vm.OnInitComplete); err != nil {
				return fmt.Errorf("adding cron schedule %q: %w", cfg.Schedule, err)
			}

			var srv *http.Server
			if cfg.MetricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", a.metrics.Handler())
				srv = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error("Metrics server failed", err)
					}
				}()
				logger.Info("Serving metrics", logging.String("addr", cfg.MetricsAddr))
			}

			c.Start()
			logger.Info("Whisker started", logging.String("schedule", cfg.Schedule))
			if runNow {
				a.vm.OnInitComplete()
			}

			<-ctx.Done()
			logger.Info("Shutting down...")

			<-c.Stop().Done()
			a.vm.Detach()
			a.vm.Close()

			if srv != nil {
				shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
				defer stop()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutting down metrics server: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&runNow, "now", false, "produce a card immediately on start")
	return cmd
}
