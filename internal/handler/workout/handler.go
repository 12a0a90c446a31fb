package workout

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/handler/middleware"
	"workout-tracker/internal/handler/response"
	workoutuc "workout-tracker/internal/usecase/workout"
)

// Handler обрабатывает запросы изменения тренировок.
// Маршруты с :workoutId регистрируются за middleware.WorkoutOwner.
type Handler struct {
	workouts workoutuc.Service
}

// NewHandler создаёт новый WorkoutHandler.
func NewHandler(workouts workoutuc.Service) *Handler {
	return &Handler{workouts: workouts}
}

// Create создаёт незавершённую тренировку текущего пользователя.
//
//	@Summary	Новая тренировка
//	@Tags		workouts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		NewWorkoutRequest	false	"название тренировки"
//	@Success	201		{object}	WorkoutResponse
//	@Failure	401		{object}	response.ErrorResponse
//	@Router		/new-workout [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req NewWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, err)
		return
	}

	w, err := h.workouts.Create(c.Request.Context(), userID, req.WorkoutName)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ToWorkoutResponse(w))
}

// AttachExercises добавляет упражнения в тренировку из тела запроса.
//
//	@Summary	Добавить упражнения
//	@Tags		workouts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		NewExercisesRequest	true	"тренировка и упражнения"
//	@Success	201		{array}		SetResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	403		{object}	response.ErrorResponse
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/workout/new-exercises [post]
func (h *Handler) AttachExercises(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req NewExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	// Маршрут без :workoutId: владельца проверяет сервис по телу запроса.
	sets, err := h.workouts.AttachExercises(c.Request.Context(), userID, req.WorkoutID, req.ExerciseIDs)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSetResponses(sets))
}

// Detail возвращает карточку тренировки с подходами по упражнениям.
//
//	@Summary	Карточка тренировки
//	@Tags		workouts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		workoutId	path		int	true	"id тренировки"
//	@Success	200			{object}	DetailResponse
//	@Failure	403			{object}	response.ErrorResponse
//	@Failure	404			{object}	response.ErrorResponse
//	@Router		/workout/{workoutId} [get]
func (h *Handler) Detail(c *gin.Context) {
	w, ok := middleware.Workout(c)
	if !ok {
		response.FromError(c, errors.New("workout missing in request context"))
		return
	}

	detail, err := h.workouts.Detail(c.Request.Context(), w)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetailResponse(detail))
}

// UpsertSets сверяет присланные подходы с сохранёнными.
//
//	@Summary	Сохранить подходы
//	@Tags		workouts
//	@Accept		json
//	@Security	BearerAuth
//	@Param		workoutId	path	int				true	"id тренировки"
//	@Param		body		body	UpsertRequest	true	"упражнения и подходы"
//	@Success	204
//	@Failure	400	{object}	response.ErrorResponse
//	@Failure	409	{object}	response.ErrorResponse
//	@Router		/workout/{workoutId} [patch]
func (h *Handler) UpsertSets(c *gin.Context) {
	w, ok := middleware.Workout(c)
	if !ok {
		response.FromError(c, errors.New("workout missing in request context"))
		return
	}

	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	sets, err := h.workouts.UpsertSets(c.Request.Context(), w.ID, req.toInput())
	if err != nil {
		response.FromError(c, err)
		return
	}

	log.WithFields(log.Fields{"workout_id": w.ID, "rows": len(sets)}).Debug("workout sets upserted")
	c.Status(http.StatusNoContent)
}

// SwapExercise заменяет упражнение :exerciseId на newExerciseId.
//
//	@Summary	Заменить упражнение
//	@Tags		workouts
//	@Accept		json
//	@Security	BearerAuth
//	@Param		workoutId	path	int					true	"id тренировки"
//	@Param		exerciseId	path	int					true	"текущее упражнение"
//	@Param		body		body	SwapExerciseRequest	true	"новое упражнение"
//	@Success	204
//	@Failure	409	{object}	response.ErrorResponse
//	@Router		/workout/{workoutId}/exercise/{exerciseId} [patch]
func (h *Handler) SwapExercise(c *gin.Context) {
	w, exerciseID, ok := h.workoutAndExercise(c)
	if !ok {
		return
	}

	var req SwapExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	if _, err := h.workouts.SwapExercise(c.Request.Context(), w.ID, exerciseID, req.NewExerciseID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Complete завершает тренировку.
//
//	@Summary	Завершить тренировку
//	@Tags		workouts
//	@Accept		json
//	@Security	BearerAuth
//	@Param		workoutId	path	int				true	"id тренировки"
//	@Param		body		body	CompleteRequest	true	"итоговое название"
//	@Success	204
//	@Router		/workout/{workoutId}/completed [patch]
func (h *Handler) Complete(c *gin.Context) {
	w, ok := middleware.Workout(c)
	if !ok {
		response.FromError(c, errors.New("workout missing in request context"))
		return
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, err)
		return
	}

	if _, err := h.workouts.Complete(c.Request.Context(), w.ID, req.WorkoutName); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveExercise удаляет все подходы упражнения из тренировки.
//
//	@Summary	Удалить упражнение
//	@Tags		workouts
//	@Security	BearerAuth
//	@Param		workoutId	path	int	true	"id тренировки"
//	@Param		exerciseId	path	int	true	"упражнение"
//	@Success	204
//	@Router		/workout/{workoutId}/exercise/{exerciseId} [delete]
func (h *Handler) RemoveExercise(c *gin.Context) {
	w, exerciseID, ok := h.workoutAndExercise(c)
	if !ok {
		return
	}

	removed, err := h.workouts.RemoveExercise(c.Request.Context(), w.ID, exerciseID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	log.WithFields(log.Fields{
		"workout_id":  w.ID,
		"exercise_id": exerciseID,
		"rows":        len(removed),
	}).Info("exercise removed from workout")
	c.Status(http.StatusNoContent)
}

func (h *Handler) workoutAndExercise(c *gin.Context) (*domain.Workout, int64, bool) {
	w, ok := middleware.Workout(c)
	if !ok {
		response.FromError(c, errors.New("workout missing in request context"))
		return nil, 0, false
	}

	exerciseID, err := middleware.ParseID(c.Param("exerciseId"))
	if err != nil {
		response.FromError(c, fmt.Errorf("%w: exerciseId: %v", workoutuc.ErrInvalidInput, err))
		return nil, 0, false
	}

	return w, exerciseID, true
}
