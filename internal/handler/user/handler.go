package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workout-tracker/internal/handler/middleware"
	"workout-tracker/internal/handler/response"
	workouthandler "workout-tracker/internal/handler/workout"
	workoutuc "workout-tracker/internal/usecase/workout"
)

// Handler обрабатывает запросы по тренировкам текущего пользователя.
type Handler struct {
	workouts workoutuc.Service
}

// NewHandler создаёт новый UserHandler.
func NewHandler(workouts workoutuc.Service) *Handler {
	return &Handler{workouts: workouts}
}

// AllWorkouts возвращает завершённые тренировки текущего пользователя.
//
//	@Summary	Завершённые тренировки
//	@Tags		user
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		workout.WorkoutResponse
//	@Failure	401	{object}	response.ErrorResponse
//	@Router		/user/all-workouts [get]
func (h *Handler) AllWorkouts(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	list, err := h.workouts.ListCompleted(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, workouthandler.ToWorkoutResponses(list))
}

// PurgeEmptyWorkouts удаляет незавершённые тренировки текущего пользователя.
//
//	@Summary	Удалить брошенные тренировки
//	@Tags		user
//	@Security	BearerAuth
//	@Success	204
//	@Router		/user/empty-workouts [delete]
func (h *Handler) PurgeEmptyWorkouts(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	if _, err := h.workouts.PurgeAbandoned(c.Request.Context(), userID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// BestSets возвращает лучший подход по каждому упражнению каждой тренировки.
//
//	@Summary	Статистика лучших подходов
//	@Tags		user
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	BestSetResponse
//	@Router		/user/workout-sets [get]
func (h *Handler) BestSets(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	list, err := h.workouts.BestSets(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBestSetResponses(list))
}
