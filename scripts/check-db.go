package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/config"
	"workout-tracker/internal/database"
)

// requiredTables создаются миграциями
var requiredTables = []string{"users", "workouts", "exercises", "sets"}

// fileExists проверяет существование файла
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

func main() {
	log.Info("Проверка подключения к базе данных...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Если скрипт запущен на хосте (не в Docker), заменяем "postgres" на "localhost"
	isInDocker := os.Getenv("container") != "" || fileExists("/.dockerenv")
	if cfg.Database.Host == "postgres" && !isInDocker {
		log.Warn("Хост 'postgres' недоступен вне Docker, использую 'localhost'")
		cfg.Database.Host = "localhost"
	}

	log.WithFields(log.Fields{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"user":     cfg.Database.User,
		"database": cfg.Database.DBName,
		"sslmode":  cfg.Database.SSLMode,
	}).Info("Параметры подключения")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, &cfg.Database, cfg.AppEnv)
	if err != nil {
		log.Fatalf("❌ Ошибка подключения к базе данных: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Ошибка закрытия подключения: %v", err)
		}
	}()

	if err := db.Ping(ctx); err != nil {
		log.Fatalf("❌ Ошибка проверки подключения (Ping): %v", err)
	}
	log.Info("✅ Подключение к базе данных установлено")

	missing := 0
	for _, table := range requiredTables {
		var exists bool
		err := db.WithContext(ctx).
			Raw("SELECT to_regclass(?) IS NOT NULL", "public."+table).
			Scan(&exists).Error
		if err != nil {
			log.Fatalf("❌ Ошибка проверки таблицы %s: %v", table, err)
		}
		if !exists {
			log.Warnf("⚠️  Таблица %s отсутствует, примените миграции: go run ./cmd/migrate", table)
			missing++
		}
	}
	if missing > 0 {
		os.Exit(1)
	}

	var exercises int64
	if err := db.WithContext(ctx).Table("exercises").Count(&exercises).Error; err != nil {
		log.Fatalf("❌ Ошибка чтения справочника упражнений: %v", err)
	}
	log.Infof("✅ Справочник упражнений: %d записей", exercises)

	fmt.Println("\n🎉 Все проверки пройдены! База данных готова к работе.")
}
