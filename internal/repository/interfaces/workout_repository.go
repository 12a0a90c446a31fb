package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "workout-tracker/internal/domain/workout"
)

//go:generate mockgen -source=workout_repository.go -destination=../mocks/workout_repository.go -package=mocks

// WorkoutRepository определяет контракт хранилища тренировок.
type WorkoutRepository interface {
	// Create создаёт тренировку; заполняет ID и CreatedAt переданной модели.
	Create(ctx context.Context, w *domain.Workout) error

	// GetByID возвращает (nil, ErrNotFound), если тренировки нет.
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)

	// ListCompleted возвращает завершённые тренировки пользователя, новые первыми.
	ListCompleted(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error)

	// Rename меняет название тренировки, nil сбрасывает его в NULL. ErrNotFound, если тренировки нет.
	Rename(ctx context.Context, id int64, name *string) error

	// Complete проставляет completed_at и название. ErrNotFound, если тренировки нет.
	Complete(ctx context.Context, id int64, name *string, at time.Time) (*domain.Workout, error)

	// PurgeAbandoned одним запросом удаляет незавершённые тренировки пользователя
	// вместе с их подходами. Возвращает количество удалённых тренировок.
	PurgeAbandoned(ctx context.Context, userID uuid.UUID) (int64, error)
}
