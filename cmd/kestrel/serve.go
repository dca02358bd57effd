package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kestrel-web/kestrel/internal/config"
	"github.com/kestrel-web/kestrel/pkg/server"
	"github.com/kestrel-web/kestrel/pkg/static"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		configPath string
		bind       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		Long: `Start the server with the routes and static mounts from the
configuration file. Without a configuration file kestrel serves its
defaults on 127.0.0.1:8080.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if bind != "" {
				cfg.Bind = bind
			}
			return runServer(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "kestrel.yaml", "configuration file")
	cmd.Flags().StringVarP(&bind, "bind", "b", "", "listen address (overrides config)")
	return cmd
}

func runServer(cfg *config.File) error {
	logger := slog.Default()

	serverConfig := &server.Config{
		Address:      cfg.Bind,
		CookieName:   cfg.CookieName,
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
		Logger:       logger,
		TracerName:   cfg.Tracer,
	}
	if cfg.MetricsBind != "" {
		serverConfig.Metrics = &server.MetricsConfig{}
	}

	srv := server.New(serverConfig)
	for _, m := range cfg.Static {
		source, err := staticSource(m)
		if err != nil {
			return err
		}
		srv.Mount(m.Prefix, source)
		logger.Info("static mount", "prefix", m.Prefix)
	}

	if cfg.MetricsBind != "" {
		go serveMetrics(cfg.MetricsBind, logger)
	}

	if err := srv.Listen(); err != nil {
		return fmt.Errorf("bind %s: %w", cfg.Bind, err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, server.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
		logger.Info("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func staticSource(m config.StaticMount) (static.Source, error) {
	switch {
	case m.Dir != "":
		return static.NewDir(m.Dir), nil
	case m.S3Bucket != "":
		client := s3.New(s3.Options{Region: m.S3Region})
		return static.NewS3Source(client, m.S3Bucket, m.S3Prefix), nil
	default:
		return nil, fmt.Errorf("static mount %s has no source", m.Prefix)
	}
}

// serveMetrics exposes Prometheus metrics on a sidecar HTTP listener,
// separate from the raw-TCP application listener.
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{},
	))
	logger.Info("metrics listening", "address", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener failed", "error", err)
	}
}
