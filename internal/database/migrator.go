package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // PostgreSQL driver
	log "github.com/sirupsen/logrus"

	"workout-tracker/internal/config"
	"workout-tracker/internal/database/migrations"
)

var (
	// ErrNoChange возвращается, когда нет миграций для применения.
	ErrNoChange = errors.New("no change")

	// ErrInvalidVersion возвращается при отрицательной версии в Force.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrDirtyState: предыдущая миграция прервана, нужен Force.
	ErrDirtyState = errors.New("database is in dirty state")
)

// SchemaStatus состояние схемы по таблице schema_migrations.
type SchemaStatus struct {
	Version uint
	Dirty   bool
}

// Applied сообщает, применялась ли хотя бы одна миграция.
func (s SchemaStatus) Applied() bool {
	return s.Version > 0
}

// Migrator управляет схемой workouts/exercises/sets через golang-migrate.
// Держит собственное подключение, Close его закрывает.
type Migrator struct {
	m   *migrate.Migrate
	log *log.Entry
}

// NewMigrator открывает отдельное подключение по cfg и подключает встроенные миграции.
func NewMigrator(cfg *config.DatabaseConfig) (*Migrator, error) {
	db, err := sql.Open("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	m, err := newMigrate(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Migrator{
		m:   m,
		log: log.WithFields(log.Fields{"component": "migrator", "database": cfg.DBName}),
	}, nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migration driver: %w", err)
	}
	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

// Close закрывает источник миграций и подключение.
func (m *Migrator) Close() error {
	if m.m == nil {
		return nil
	}
	sourceErr, dbErr := m.m.Close()
	if sourceErr != nil {
		return fmt.Errorf("close migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration connection: %w", dbErr)
	}
	return nil
}

// Status читает текущую версию схемы. Пустая база даёт нулевую версию.
func (m *Migrator) Status() (SchemaStatus, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return SchemaStatus{}, nil
	}
	if err != nil {
		return SchemaStatus{}, fmt.Errorf("read schema version: %w", err)
	}
	return SchemaStatus{Version: version, Dirty: dirty}, nil
}

// Up применяет все миграции. На грязной схеме не запускается и возвращает ErrDirtyState.
func (m *Migrator) Up() error {
	status, err := m.Status()
	if err != nil {
		return err
	}
	if status.Dirty {
		return fmt.Errorf("%w: version %d", ErrDirtyState, status.Version)
	}

	if err := translate(m.m.Up()); err != nil {
		return err
	}
	m.log.WithField("from_version", status.Version).Info("schema migrated up")
	return nil
}

// Down откатывает одну миграцию.
func (m *Migrator) Down() error {
	return m.Steps(-1)
}

// Steps применяет (n > 0) или откатывает (n < 0) n миграций.
func (m *Migrator) Steps(n int) error {
	if n == 0 {
		return ErrNoChange
	}
	if err := translate(m.m.Steps(n)); err != nil {
		return err
	}
	m.log.WithField("steps", n).Info("schema migration steps applied")
	return nil
}

// Force выставляет версию без выполнения SQL и снимает dirty-флаг.
func (m *Migrator) Force(version int) error {
	if version < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
	if err := m.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	m.log.WithField("version", version).Warn("schema version forced")
	return nil
}

// translate приводит ошибки golang-migrate к ошибкам пакета.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, migrate.ErrNoChange):
		return ErrNoChange
	default:
		var dirty migrate.ErrDirty
		if errors.As(err, &dirty) {
			return fmt.Errorf("%w: version %d", ErrDirtyState, dirty.Version)
		}
		return fmt.Errorf("migrate: %w", err)
	}
}
