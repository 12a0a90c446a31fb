//go:build integration

// Package pgtest поднимает одноразовый PostgreSQL в Docker для интеграционных тестов.
package pgtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/config"
	"workout-tracker/internal/database"
)

// Instance — запущенный контейнер с применёнными миграциями.
type Instance struct {
	Config *config.DatabaseConfig
	DB     *database.DB

	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// Start запускает postgres:16, ждёт готовности и применяет миграции.
func Start() (*Instance, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	if err = pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=workout_tracker",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}

	inst := &Instance{
		Config: &config.DatabaseConfig{
			Host:     "localhost",
			Port:     resource.GetPort("5432/tcp"),
			User:     "postgres",
			Password: "postgres",
			DBName:   "workout_tracker",
			SSLMode:  "disable",
		},
		pool:     pool,
		resource: resource,
	}

	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		var openErr error
		inst.DB, openErr = database.NewConnection(context.Background(), inst.Config, "test")
		return openErr
	})
	if err != nil {
		inst.Close()
		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	if err := inst.migrate(); err != nil {
		inst.Close()
		return nil, err
	}

	log.Infof("test postgres ready on port %s", inst.Config.Port)
	return inst, nil
}

func (i *Instance) migrate() error {
	migrator, err := database.NewMigrator(i.Config)
	if err != nil {
		return fmt.Errorf("new migrator: %w", err)
	}
	defer func() { _ = migrator.Close() }()

	if err := migrator.Up(); err != nil && !errors.Is(err, database.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Close закрывает пул и удаляет контейнер.
func (i *Instance) Close() {
	if i.DB != nil {
		_ = i.DB.Close()
	}
	if i.resource != nil {
		_ = i.pool.Purge(i.resource)
	}
}
