package interfaces

import (
	"context"

	"github.com/google/uuid"

	domain "workout-tracker/internal/domain/workout"
)

//go:generate mockgen -source=set_repository.go -destination=../mocks/set_repository.go -package=mocks

// SetRepository определяет контракт хранилища подходов.
// Ошибки внешних ключей возвращаются как ErrReferenceViolation.
type SetRepository interface {
	// AttachExercises вставляет по одному пустому подходу set_order = 1 на каждое упражнение
	// одним многострочным INSERT.
	AttachExercises(ctx context.Context, workoutID int64, exerciseIDs []int64) ([]domain.Set, error)

	// UpdateFirstSet обновляет reps/weight подхода (workout, exercise, 1).
	// Возвращает ErrNotFound, если такой строки нет.
	UpdateFirstSet(ctx context.Context, workoutID, exerciseID int64, reps *int, weight *float64) ([]domain.Set, error)

	// Insert добавляет новый подход.
	Insert(ctx context.Context, s *domain.Set) error

	// SwapExercise переписывает exercise_id у всех подходов пары, сохраняя порядок и значения.
	SwapExercise(ctx context.Context, workoutID, currentID, newID int64) ([]domain.Set, error)

	// RemoveExercise удаляет все подходы пары и возвращает удалённые строки.
	RemoveExercise(ctx context.Context, workoutID, exerciseID int64) ([]domain.Set, error)

	// DetailRows возвращает подходы тренировки вместе с данными упражнений.
	DetailRows(ctx context.Context, workoutID int64) ([]domain.DetailRow, error)

	// StatRows возвращает все подходы пользователя с данными упражнений и тренировок.
	StatRows(ctx context.Context, userID uuid.UUID) ([]domain.StatRow, error)
}
