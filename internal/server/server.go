package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 5 * time.Second

// StartAPIServer serves handler on port until ctx is done, then drains in-flight requests
// for at most shutdownTimeout.
func StartAPIServer(
	ctx context.Context,
	log *slog.Logger,
	handler http.Handler,
	port string,
	shutdownTimeout time.Duration,
) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	return serve(ctx, log.With(slog.String("server", "api")), srv, shutdownTimeout)
}

// StartMonitoringServer exposes /metrics from reg and /healthz backed by db and the optional cache.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg prometheus.Gatherer,
	db Pinger,
	cache Pinger,
	port string,
	shutdownTimeout time.Duration,
) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.Handle("/healthz", NewHealthChecker(db, cache, log))

	srv := &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return serve(ctx, log.With(slog.String("server", "monitoring")), srv, shutdownTimeout)
}

func serve(ctx context.Context, log *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Server is listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Server shutdown failed", sl.Err(err))
		return fmt.Errorf("failed to shut down server on %s: %w", srv.Addr, err)
	}

	log.InfoContext(shutdownCtx, "Server stopped")

	return nil
}
