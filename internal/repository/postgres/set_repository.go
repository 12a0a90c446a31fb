package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
)

// pgSet ORM-модель таблицы sets
type pgSet struct {
	ID         int64    `gorm:"column:set_id;primaryKey;autoIncrement"`
	WorkoutID  int64    `gorm:"column:workout_id;not null"`
	ExerciseID int64    `gorm:"column:exercise_id;not null"`
	SetOrder   int      `gorm:"column:set_order;not null"`
	Reps       *int     `gorm:"column:reps"`
	Weight     *float64 `gorm:"column:weight;type:numeric(7,2)"`
}

func (pgSet) TableName() string {
	return "sets"
}

func (m *pgSet) toDomain() domain.Set {
	return domain.Set{
		ID:         m.ID,
		WorkoutID:  m.WorkoutID,
		ExerciseID: m.ExerciseID,
		SetOrder:   m.SetOrder,
		Reps:       m.Reps,
		Weight:     m.Weight,
	}
}

func setsToDomain(models []pgSet) []domain.Set {
	sets := make([]domain.Set, 0, len(models))
	for i := range models {
		sets = append(sets, models[i].toDomain())
	}
	return sets
}

// detailRow строка соединения sets × exercises
type detailRow struct {
	SetID        int64    `gorm:"column:set_id"`
	ExerciseID   int64    `gorm:"column:exercise_id"`
	ExerciseName string   `gorm:"column:exercise_name"`
	Equipment    *string  `gorm:"column:equipment"`
	SetOrder     int      `gorm:"column:set_order"`
	Reps         *int     `gorm:"column:reps"`
	Weight       *float64 `gorm:"column:weight"`
}

const detailRowsQuery = `
SELECT s.set_id, s.exercise_id, e.name AS exercise_name, e.equipment,
       s.set_order, s.reps, s.weight
FROM sets s
JOIN exercises e ON e.exercise_id = s.exercise_id
WHERE s.workout_id = ?
ORDER BY s.set_id`

// statRow — подход пользователя с данными тренировки и упражнения.
type statRow struct {
	SetID       int64      `gorm:"column:set_id"`
	WorkoutID   int64      `gorm:"column:workout_id"`
	WorkoutName *string    `gorm:"column:workout_name"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	ExerciseID  int64      `gorm:"column:exercise_id"`
	Name        string     `gorm:"column:name"`
	MuscleGroup string     `gorm:"column:muscle_group"`
	Equipment   *string    `gorm:"column:equipment"`
	SetOrder    int        `gorm:"column:set_order"`
	Reps        *int       `gorm:"column:reps"`
	Weight      *float64   `gorm:"column:weight"`
}

const statRowsQuery = `
SELECT s.set_id, s.workout_id, w.name AS workout_name, w.completed_at,
       s.exercise_id, e.name, e.muscle_group, e.equipment,
       s.set_order, s.reps, s.weight
FROM sets s
JOIN workouts w ON w.workout_id = s.workout_id
JOIN exercises e ON e.exercise_id = s.exercise_id
WHERE w.user_id = ?
ORDER BY s.set_id`

// SetRepository реализует repo.SetRepository поверх GORM.
type SetRepository struct {
	db *gorm.DB
}

var _ repo.SetRepository = (*SetRepository)(nil)

// NewSetRepository создает новый репозиторий подходов.
func NewSetRepository(db *gorm.DB) *SetRepository {
	return &SetRepository{db: db}
}

// AttachExercises вставляет первые пустые подходы одним INSERT: либо все строки, либо ни одной.
func (r *SetRepository) AttachExercises(ctx context.Context, workoutID int64, exerciseIDs []int64) ([]domain.Set, error) {
	models := make([]pgSet, 0, len(exerciseIDs))
	for _, id := range exerciseIDs {
		models = append(models, pgSet{
			WorkoutID:  workoutID,
			ExerciseID: id,
			SetOrder:   domain.FirstSetOrder,
		})
	}

	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return setsToDomain(models), nil
}

// UpdateFirstSet обновляет reps/weight первого подхода пары.
func (r *SetRepository) UpdateFirstSet(ctx context.Context, workoutID, exerciseID int64, reps *int, weight *float64) ([]domain.Set, error) {
	var models []pgSet
	result := r.db.WithContext(ctx).
		Model(&models).
		Clauses(clause.Returning{}).
		Where("workout_id = ? AND exercise_id = ? AND set_order = ?", workoutID, exerciseID, domain.FirstSetOrder).
		Updates(map[string]interface{}{
			"reps":   reps,
			"weight": weight,
		})
	if result.Error != nil {
		return nil, translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repo.ErrNotFound
	}
	return setsToDomain(models), nil
}

// Insert добавляет подход и заполняет его ID.
func (r *SetRepository) Insert(ctx context.Context, s *domain.Set) error {
	model := &pgSet{
		WorkoutID:  s.WorkoutID,
		ExerciseID: s.ExerciseID,
		SetOrder:   s.SetOrder,
		Reps:       s.Reps,
		Weight:     s.Weight,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateWriteError(err)
	}
	s.ID = model.ID
	return nil
}

// SwapExercise заменяет упражнение во всех подходах пары.
func (r *SetRepository) SwapExercise(ctx context.Context, workoutID, currentID, newID int64) ([]domain.Set, error) {
	var models []pgSet
	err := r.db.WithContext(ctx).
		Model(&models).
		Clauses(clause.Returning{}).
		Where("workout_id = ? AND exercise_id = ?", workoutID, currentID).
		Update("exercise_id", newID).Error
	if err != nil {
		return nil, translateWriteError(err)
	}
	return setsToDomain(models), nil
}

// RemoveExercise удаляет все подходы пары.
func (r *SetRepository) RemoveExercise(ctx context.Context, workoutID, exerciseID int64) ([]domain.Set, error) {
	var models []pgSet
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("workout_id = ? AND exercise_id = ?", workoutID, exerciseID).
		Delete(&models).Error
	if err != nil {
		return nil, err
	}
	return setsToDomain(models), nil
}

// DetailRows возвращает подходы тренировки в порядке вставки.
func (r *SetRepository) DetailRows(ctx context.Context, workoutID int64) ([]domain.DetailRow, error) {
	var rows []detailRow
	if err := r.db.WithContext(ctx).Raw(detailRowsQuery, workoutID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]domain.DetailRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.DetailRow{
			SetID:        row.SetID,
			ExerciseID:   row.ExerciseID,
			ExerciseName: row.ExerciseName,
			Equipment:    row.Equipment,
			SetOrder:     row.SetOrder,
			Reps:         row.Reps,
			Weight:       row.Weight,
		})
	}
	return result, nil
}

// StatRows возвращает все подходы пользователя.
func (r *SetRepository) StatRows(ctx context.Context, userID uuid.UUID) ([]domain.StatRow, error) {
	var rows []statRow
	if err := r.db.WithContext(ctx).Raw(statRowsQuery, userID.String()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]domain.StatRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.StatRow{
			SetID:       row.SetID,
			WorkoutID:   row.WorkoutID,
			WorkoutName: row.WorkoutName,
			CompletedAt: row.CompletedAt,
			ExerciseID:  row.ExerciseID,
			Name:        row.Name,
			MuscleGroup: row.MuscleGroup,
			Equipment:   row.Equipment,
			SetOrder:    row.SetOrder,
			Reps:        row.Reps,
			Weight:      row.Weight,
		})
	}
	return result, nil
}

func translateWriteError(err error) error {
	if isForeignKeyViolation(err) {
		return repo.ErrReferenceViolation
	}
	return err
}
