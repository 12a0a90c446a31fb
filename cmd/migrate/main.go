package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/config"
	"workout-tracker/internal/database"
)

func main() {
	// Определяем флаги
	var (
		up      = flag.Bool("up", false, "Применить все доступные миграции (по умолчанию)")
		down    = flag.Bool("down", false, "Откатить последнюю миграцию")
		steps   = flag.String("steps", "", "Применить/откатить N миграций (положительное число - вверх, отрицательное - вниз)")
		version = flag.Bool("version", false, "Показать текущую версию миграции")
		force   = flag.Int("force", -1, "Принудительно выставить версию (снимает dirty-флаг)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Использование: %s [опции]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Опции:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nПримеры:\n")
		fmt.Fprintf(os.Stderr, "  %s              # Применить все миграции (по умолчанию)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -up          # Применить все миграции\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -down        # Откатить последнюю миграцию\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -steps 2     # Применить 2 миграции\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -steps -1    # Откатить 1 миграцию\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -version     # Показать текущую версию\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -force 3     # Выставить версию 3 после ручного исправления\n", os.Args[0])
	}

	flag.Parse()

	log.Info("Запуск миграции базы данных...")

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Мигратор открывает собственное подключение и закрывает его в Close
	migrator, err := database.NewMigrator(&cfg.Database)
	if err != nil {
		log.Fatalf("Ошибка создания мигратора: %v", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Errorf("Ошибка закрытия мигратора: %v", err)
		}
	}()

	// Определяем действие на основе флагов
	actionCount := 0
	if *up {
		actionCount++
	}
	if *down {
		actionCount++
	}
	if *steps != "" {
		actionCount++
	}
	if *version {
		actionCount++
	}
	if *force >= 0 {
		actionCount++
	}

	// Если не указано действие, по умолчанию применяем все миграции
	if actionCount == 0 {
		*up = true
	} else if actionCount > 1 {
		log.Fatal("Ошибка: можно указать только одно действие за раз")
	}

	// Выполняем действие
	switch {
	case *version:
		handleVersion(migrator)
	case *force >= 0:
		handleForce(migrator, *force)
	case *down:
		handleDown(migrator)
	case *steps != "":
		handleSteps(migrator, *steps)
	case *up:
		handleUp(migrator)
	}
}

// handleUp применяет все доступные миграции
func handleUp(migrator *database.Migrator) {
	log.Info("Применение всех доступных миграций...")
	if err := migrator.Up(); err != nil {
		if errors.Is(err, database.ErrNoChange) {
			log.Info("Нет миграций для применения. База данных уже актуальна.")
			return
		}
		if errors.Is(err, database.ErrDirtyState) {
			log.Fatalf("Миграции остановлены: %v. Исправьте схему и выполните -force <версия>", err)
		}
		log.Fatalf("Ошибка применения миграций: %v", err)
	}
	log.Info("Все миграции успешно применены")
}

// handleDown откатывает последнюю миграцию
func handleDown(migrator *database.Migrator) {
	log.Info("Откат последней миграции...")
	if err := migrator.Down(); err != nil {
		if errors.Is(err, database.ErrNoChange) {
			log.Info("Нет миграций для отката. База данных уже в базовом состоянии.")
			return
		}
		log.Fatalf("Ошибка отката миграции: %v", err)
	}
	log.Info("Миграция успешно откатилась")
}

// handleSteps применяет или откатывает N миграций
func handleSteps(migrator *database.Migrator, stepsStr string) {
	n, err := strconv.Atoi(stepsStr)
	if err != nil {
		log.Fatalf("Ошибка: неверный формат числа для -steps: %v", err)
	}

	if n == 0 {
		log.Info("Ноль миграций для применения/отката")
		return
	}

	direction := "вверх"
	absN := n
	if n < 0 {
		direction = "вниз"
		absN = -n
	}

	log.Infof("Применение %d миграций %s...", absN, direction)

	if err := migrator.Steps(n); err != nil {
		if errors.Is(err, database.ErrNoChange) {
			log.Infof("Нет миграций для применения/отката в направлении %s.", direction)
			return
		}
		log.Fatalf("Ошибка применения миграций: %v", err)
	}
}

// handleVersion показывает текущую версию миграции
func handleVersion(migrator *database.Migrator) {
	status, err := migrator.Status()
	if err != nil {
		log.Fatalf("Ошибка получения версии: %v", err)
	}

	switch {
	case !status.Applied():
		log.Info("Версия: нет примененных миграций")
	case status.Dirty:
		log.Errorf("Версия: %d (ГРЯЗНОЕ СОСТОЯНИЕ - исправьте схему и выполните -force %d)", status.Version, status.Version)
		os.Exit(1)
	default:
		log.Infof("Версия: %d", status.Version)
	}
}

// handleForce выставляет версию без применения миграций
func handleForce(migrator *database.Migrator, version int) {
	log.Warnf("Принудительная установка версии %d...", version)
	if err := migrator.Force(version); err != nil {
		log.Fatalf("Ошибка установки версии: %v", err)
	}
	log.Infof("Версия %d установлена", version)
}
