package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
)

// pgWorkout ORM-модель таблицы workouts
type pgWorkout struct {
	ID          int64      `gorm:"column:workout_id;primaryKey;autoIncrement"`
	UserID      string     `gorm:"column:user_id;type:uuid;not null"`
	Name        *string    `gorm:"column:name;type:varchar(255)"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"`
}

func (pgWorkout) TableName() string {
	return "workouts"
}

func (m *pgWorkout) toDomain() (*domain.Workout, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.Workout{
		ID:          m.ID,
		UserID:      userID,
		Name:        m.Name,
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
	}, nil
}

// purgeAbandonedQuery удаляет подходы и незавершённые тренировки одним выражением.
const purgeAbandonedQuery = `
WITH doomed AS (
    SELECT workout_id FROM workouts
    WHERE user_id = ? AND completed_at IS NULL
), deleted_sets AS (
    DELETE FROM sets
    WHERE workout_id IN (SELECT workout_id FROM doomed)
)
DELETE FROM workouts
WHERE workout_id IN (SELECT workout_id FROM doomed)`

// WorkoutRepository реализует repo.WorkoutRepository поверх GORM.
type WorkoutRepository struct {
	db *gorm.DB
}

var _ repo.WorkoutRepository = (*WorkoutRepository)(nil)

// NewWorkoutRepository создает новый репозиторий тренировок.
func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create вставляет тренировку и заполняет ID сгенерированным значением.
func (r *WorkoutRepository) Create(ctx context.Context, w *domain.Workout) error {
	model := &pgWorkout{
		UserID:      w.UserID.String(),
		Name:        w.Name,
		CreatedAt:   w.CreatedAt,
		CompletedAt: w.CompletedAt,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isForeignKeyViolation(err) {
			return repo.ErrReferenceViolation
		}
		return err
	}
	w.ID = model.ID
	w.CreatedAt = model.CreatedAt
	return nil
}

// GetByID возвращает тренировку по идентификатору.
func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var model pgWorkout
	err := r.db.WithContext(ctx).Where("workout_id = ?", id).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

// ListCompleted возвращает завершённые тренировки пользователя, новые первыми.
func (r *WorkoutRepository) ListCompleted(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error) {
	var models []pgWorkout
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed_at IS NOT NULL", userID.String()).
		Order("completed_at DESC, workout_id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return workoutsToDomain(models)
}

// Rename меняет название тренировки.
func (r *WorkoutRepository) Rename(ctx context.Context, id int64, name *string) error {
	result := r.db.WithContext(ctx).
		Model(&pgWorkout{}).
		Where("workout_id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Complete проставляет время завершения и название. Повторный вызов перезаписывает оба поля.
func (r *WorkoutRepository) Complete(ctx context.Context, id int64, name *string, at time.Time) (*domain.Workout, error) {
	var models []pgWorkout
	result := r.db.WithContext(ctx).
		Model(&models).
		Clauses(clause.Returning{}).
		Where("workout_id = ?", id).
		Updates(map[string]interface{}{
			"name":         name,
			"completed_at": at,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(models) == 0 {
		return nil, repo.ErrNotFound
	}
	return models[0].toDomain()
}

// PurgeAbandoned удаляет незавершённые тренировки пользователя и их подходы.
func (r *WorkoutRepository) PurgeAbandoned(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Exec(purgeAbandonedQuery, userID.String())
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func workoutsToDomain(models []pgWorkout) ([]domain.Workout, error) {
	workouts := make([]domain.Workout, 0, len(models))
	for i := range models {
		w, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	return workouts, nil
}
