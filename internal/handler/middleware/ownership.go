package middleware

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/handler/response"
	workoutuc "workout-tracker/internal/usecase/workout"
)

const ContextWorkoutKey = "workout"

// WorkoutAuthorizer проверяет принадлежность тренировки пользователю.
type WorkoutAuthorizer interface {
	Authorize(ctx context.Context, userID uuid.UUID, workoutID int64) (*domain.Workout, error)
}

// WorkoutOwner пропускает запрос только к тренировке текущего пользователя.
// Id тренировки берётся из параметра :workoutId; найденная тренировка
// сохраняется в контексте под ContextWorkoutKey.
func WorkoutOwner(authorizer WorkoutAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := MustUserID(c)
		if !ok {
			return
		}

		workoutID, err := ParseID(c.Param("workoutId"))
		if err != nil {
			response.FromError(c, fmt.Errorf("%w: workoutId: %v", workoutuc.ErrInvalidInput, err))
			return
		}

		w, err := authorizer.Authorize(c.Request.Context(), userID, workoutID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		c.Set(ContextWorkoutKey, w)
		c.Next()
	}
}

// Workout возвращает тренировку, сохранённую WorkoutOwner.
func Workout(c *gin.Context) (*domain.Workout, bool) {
	v, ok := c.Get(ContextWorkoutKey)
	if !ok {
		return nil, false
	}
	w, ok := v.(*domain.Workout)
	return w, ok && w != nil
}

// ParseID разбирает положительный целочисленный идентификатор из пути.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("must be positive: %d", id)
	}
	return id, nil
}
