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

	"github.com/aretw0/camelgraph/internal/config"
	httpAdapter "github.com/aretw0/camelgraph/pkg/adapters/http"
	"github.com/aretw0/camelgraph/pkg/adapters/memory"
	"github.com/aretw0/camelgraph/pkg/adapters/redis"
	"github.com/aretw0/camelgraph/pkg/observability"
	"github.com/aretw0/camelgraph/pkg/ports"
	"github.com/aretw0/camelgraph/pkg/runner"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the stateless HTTP server",
		Long: `Starts camelgraph as an HTTP service.

  POST /convert?format=&layout=&beans=   body: route document
  GET  /healthz, /version, /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			r, closeCache, err := a.newRunner(cfg, reg)
			if err != nil {
				return err
			}
			defer closeCache()

			srv := &http.Server{
				Addr:              cfg.Serve.Addr,
				Handler:           httpAdapter.NewHandler(r, reg, cfg.Serve.MaxBodyBytes),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("Starting camelgraph server", "address", srv.Addr, "cache", cfg.Cache.Backend)
				serverErrors <- srv.ListenAndServe()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
				a.logger.Info("Start shutdown")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.logger.Warn("Graceful shutdown did not complete", "error", err)
					if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("error killing server: %w", err)
					}
				}
				a.logger.Info("camelgraph server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	return cmd
}

// newRunner wires the result cache and metrics selected by the configuration.
// The returned func releases the cache connection.
func (a *app) newRunner(cfg config.Config, reg prometheus.Registerer) (*runner.Runner, func(), error) {
	styles, err := cfg.Styles()
	if err != nil {
		return nil, nil, err
	}

	r := runner.NewRunner()
	r.Logger = a.logger
	r.Styles = styles
	r.Metrics = observability.NewRecorder(reg)

	closeCache := func() {}
	var cache ports.ResultCache
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		cache = memory.NewCache(memory.WithTTL(cfg.Cache.TTL))
	case config.CacheRedis:
		rc := redis.New(cfg.Cache.RedisAddr, "", 0,
			redis.WithTTL(cfg.Cache.TTL),
			redis.WithPrefix(cfg.Cache.Prefix),
		)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("redis cache unavailable at %s: %w", cfg.Cache.RedisAddr, err)
		}
		cache = rc
		closeCache = func() { _ = rc.Close() }
	case config.CacheNone:
	}
	r.Cache = cache

	return r, closeCache, nil
}
