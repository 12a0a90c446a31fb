package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"workout-tracker/internal/config"
	"workout-tracker/internal/database"
	"workout-tracker/internal/handler/middleware"
	"workout-tracker/internal/server"
	"workout-tracker/pkg/logger"
)

const startupTimeout = 30 * time.Second

//	@title						Workout Tracker API
//	@version					1.0
//	@description				REST API для учёта тренировок: тренировки, упражнения, подходы и статистика.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	flushLogs := logger.Setup(logger.SetupParams{
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
		ToStdout:    cfg.Log.ToStdout,
		JSON:        cfg.Log.JSON,
		Environment: cfg.AppEnv,
		SentryDSN:   cfg.Log.SentryDSN,
	})
	defer flushLogs()

	if err := run(cfg); err != nil {
		log.WithError(err).Error("server stopped with error")
		flushLogs()
		log.Exit(1)
	}
}

func run(cfg *config.Config) (err error) {
	log.WithFields(log.Fields{
		"env":     cfg.AppEnv,
		"address": cfg.Server.Address(),
		"db":      fmt.Sprintf("%s@%s:%s/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName),
	}).Info("workout tracker starting")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := database.NewConnection(ctx, &cfg.Database, cfg.AppEnv)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	if cfg.Database.AutoMigrate {
		if err := migrate(&cfg.Database); err != nil {
			return err
		}
	}

	var limiter middleware.RequestRateLimiter
	if cfg.RateLimit.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       0,
		})
		defer func() {
			err = multierr.Append(err, rdb.Close())
		}()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		limiter = redis_rate.NewLimiter(rdb)
		log.Infof("sign-in rate limit enabled: %d/min", cfg.RateLimit.SignInPerMinute)
	} else {
		log.Info("sign-in rate limit disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return server.NewServer(cfg, db, reg, limiter).Start()
}

// migrate применяет миграции через отдельное подключение: Close мигратора
// закрывает его собственный пул, а не пул сервера.
func migrate(cfg *config.DatabaseConfig) (err error) {
	migrator, err := database.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, migrator.Close())
	}()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, database.ErrNoChange) {
			log.Info("database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info("database migrations applied")
	return nil
}
