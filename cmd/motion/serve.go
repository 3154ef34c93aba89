package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/metrics"
	"github.com/vovakirdan/tui-motion/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the motion SSH server",
	Long: `Start an SSH server that lets users connect and play scenes.

Each SSH connection gets its own session with a scene picker, its own
animation clock, and its own renderer. The run journal is shared.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.motion/host_key

Examples:
  motion serve                           # Listen on the configured address
  motion serve --ssh :2222               # Listen on port 2222
  motion serve --metrics :9090           # Also expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (empty = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes (-1 = from config, 0 = none)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics HTTP address (empty = from config, disabled if unset)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}
	if flagMetricsAddr != "" {
		cfg.Server.MetricsAddress = flagMetricsAddr
	}

	logger := newLogger(cfg, "motion-ssh", os.Stderr)

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating metrics: %v\n", err)
		os.Exit(1)
	}

	journal := journalHooks(store, logger)
	hooks := func(sceneID string) anim.Hooks {
		return collector.Hooks().Merge(journal(sceneID))
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: cfg.IdleTimeout(),
		Play:        playOptions(cfg, core.DefaultConfig(), hooks, logger),
		Store:       store,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.MetricsAddress != "" {
		srv := &http.Server{
			Addr:              cfg.Server.MetricsAddress,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	fmt.Printf("Starting motion SSH server on %s\n", cfg.Server.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	return mux
}
