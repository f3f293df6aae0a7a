package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vigil-sh/vigil/internal/action"
	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/config"
	"github.com/vigil-sh/vigil/internal/constants"
	"github.com/vigil-sh/vigil/internal/domain"
	"github.com/vigil-sh/vigil/internal/events"
	"github.com/vigil-sh/vigil/internal/monitor"
	"github.com/vigil-sh/vigil/internal/notify"
	"github.com/vigil-sh/vigil/internal/probe"
	"github.com/vigil-sh/vigil/internal/store"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start monitoring all configured sites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runMonitor(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

// runMonitor runs the scheduler and, when enabled, the HTTP API, until ctx
// is cancelled
func runMonitor(ctx context.Context, cfg *config.Config) error {
	st := store.New(cfg.Store)
	sites, err := st.Load()
	if err != nil && !errors.Is(err, domain.ErrStoreNotFound) {
		return err
	}
	if len(sites) == 0 {
		return fmt.Errorf("no sites to monitor; add one with 'vigil add <url>'")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	hub := events.NewHub(events.HubConfig{
		BufferSize:         constants.DefaultEventBufferSize,
		SubscriptionBuffer: constants.DefaultSubscriptionBuffer,
	})
	defer hub.Close()

	notifier := notify.New(cfg.LogDir, os.Stdout, hub, logger)
	defer notifier.Close()

	mon := monitor.New(sites, monitor.Config{
		Granularity: cfg.PollGranularity,
		Store:       st,
		Prober:      probe.NewHTTPProber(cfg.ProbeTimeout),
		Runner:      action.NewShellRunner(cfg.ActionTimeout),
		Notifier:    notifier,
		Logger:      logger,
	})

	var apiServer *api.Server
	if cfg.API.IsEnabled() {
		handlers := api.NewHandlers(mon, hub, cfg.Store, logger)
		apiServer = api.NewServer(api.ServerConfig{
			Host: cfg.API.Host,
			Port: cfg.API.Port,
		}, handlers)

		fmt.Printf("API server: http://%s\n", apiServer.Addr())
		go func() {
			if err := apiServer.Start(); err != nil {
				// Server closed is expected on shutdown
				if !strings.Contains(err.Error(), "Server closed") {
					fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
				}
			}
		}()
	}

	err = mon.Run(ctx)

	if apiServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		if shutdownErr := apiServer.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("shutting down API server", "error", shutdownErr)
		}
	}

	return err
}
