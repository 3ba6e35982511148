package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finplan/finplan/internal/audit"
	"github.com/finplan/finplan/internal/calculation"
	"github.com/finplan/finplan/internal/economic"
	"github.com/finplan/finplan/internal/server"
)

// Environment variables understood by serve, loaded from .env when
// present: FINPLAN_PORT, FINPLAN_INDICATOR_TTL_HOURS,
// FINPLAN_REFRESH_SCHEDULE, FINPLAN_WORLDBANK_URL, FINPLAN_COUNTRY.

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planning engine as an HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("failed to load .env file")
		}

		port := envInt("FINPLAN_PORT", 8080)
		if flagPort, _ := cmd.Flags().GetInt("port"); flagPort != 0 {
			port = flagPort
		}
		ttl := time.Duration(envInt("FINPLAN_INDICATOR_TTL_HOURS", 24)) * time.Hour

		var clientOpts []economic.ClientOption
		if u := os.Getenv("FINPLAN_WORLDBANK_URL"); u != "" {
			clientOpts = append(clientOpts, economic.WithBaseURL(u))
		}
		if c := os.Getenv("FINPLAN_COUNTRY"); c != "" {
			clientOpts = append(clientOpts, economic.WithCountry(c))
		}

		cache := economic.NewCache(economic.NewClient(log, clientOpts...), ttl, log)
		engine := calculation.NewEngine(audit.NewLogRecorder(log), log)

		srv := server.New(server.Config{
			Port:       port,
			Log:        log,
			Engine:     engine,
			Indicators: cache,
		})

		sched := server.NewScheduler(cache, log)
		if err := sched.Start(os.Getenv("FINPLAN_REFRESH_SCHEDULE")); err != nil {
			return err
		}
		defer sched.Stop()

		// Warm the snapshot before accepting traffic.
		warmCtx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		cache.Latest(warmCtx)
		cancel()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case sig := <-stop:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP port (overrides FINPLAN_PORT)")
}
