package postgres

import (
	"context"

	"gorm.io/gorm"

	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
)

// pgExercise ORM-модель справочника exercises
type pgExercise struct {
	ID          int64   `gorm:"column:exercise_id;primaryKey"`
	Name        string  `gorm:"column:name;not null"`
	MuscleGroup string  `gorm:"column:muscle_group;not null"`
	Equipment   *string `gorm:"column:equipment"`
}

func (pgExercise) TableName() string {
	return "exercises"
}

// ExerciseRepository реализует repo.ExerciseRepository поверх GORM.
type ExerciseRepository struct {
	db *gorm.DB
}

var _ repo.ExerciseRepository = (*ExerciseRepository)(nil)

// NewExerciseRepository создает репозиторий справочника упражнений.
func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// List возвращает все упражнения, отсортированные по названию.
func (r *ExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	var models []pgExercise
	if err := r.db.WithContext(ctx).Order("name ASC, exercise_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	exercises := make([]domain.Exercise, 0, len(models))
	for _, m := range models {
		exercises = append(exercises, domain.Exercise{
			ID:          m.ID,
			Name:        m.Name,
			MuscleGroup: m.MuscleGroup,
			Equipment:   m.Equipment,
		})
	}
	return exercises, nil
}
