package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/hestia/internal/cache"
	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/generator"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/UnknownOlympus/hestia/internal/services/dataset"
	"github.com/UnknownOlympus/hestia/internal/services/staff"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	departmentRepo := repository.NewDepartmentRepository(dtb, appMetrics)

	var (
		seederOpts    []dataset.Option
		directoryOpts []staff.Option
		cachePinger   server.Pinger
	)
	if cfg.Redis.Enabled() {
		redisClient, redisErr := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if redisErr != nil {
			logger.WarnContext(ctx, "Statistics cache disabled", sl.Err(redisErr))
		} else {
			defer redisClient.Close()

			statsCache := cache.NewStatsCache(redisClient, cfg.Redis.TTL)
			seederOpts = append(seederOpts, dataset.WithStatsCache(statsCache))
			directoryOpts = append(directoryOpts, staff.WithStatsCache(statsCache))
			cachePinger = statsCache
			logger.InfoContext(ctx, "Statistics cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL.String())
		}
	}

	seeder := dataset.NewSeeder(logger, employeeRepo, departmentRepo, generator.New(0), appMetrics, seederOpts...)
	directory := staff.NewDirectory(logger, employeeRepo, departmentRepo, appMetrics, directoryOpts...)
	api := server.NewAPI(logger, seeder, directory, appMetrics)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		if monErr := server.StartMonitoringServer(
			ctx, logger, reg, dtb, cachePinger, cfg.Monitoring.Port, cfg.HTTP.ShutdownTimeout,
		); monErr != nil {
			logger.ErrorContext(ctx, "Monitoring server failed", sl.Err(monErr))
		}
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting Employee Management API", "port", cfg.HTTP.Port)
		if apiErr := server.StartAPIServer(
			ctx, logger, api.Routes(), cfg.HTTP.Port, cfg.HTTP.ShutdownTimeout,
		); apiErr != nil {
			logger.ErrorContext(ctx, "Employee Management API failed", sl.Err(apiErr))
			stop()
		}
		logger.InfoContext(ctx, "Employee Management API stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
