package interfaces

import (
	"context"

	domain "workout-tracker/internal/domain/workout"
)

//go:generate mockgen -source=exercise_repository.go -destination=../mocks/exercise_repository.go -package=mocks

// ExerciseRepository — доступ к справочнику упражнений (только чтение).
type ExerciseRepository interface {
	// List возвращает все упражнения, отсортированные по названию.
	List(ctx context.Context) ([]domain.Exercise, error)
}
