package exercise

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/handler/response"
	exerciseuc "workout-tracker/internal/usecase/exercise"
)

// ExerciseResponse — упражнение справочника.
type ExerciseResponse struct {
	ExerciseID  int64   `json:"exerciseId"`
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscleGroup"`
	Equipment   *string `json:"equipment"`
}

// Handler отдаёт справочник упражнений.
type Handler struct {
	exercises exerciseuc.Service
}

func NewHandler(exercises exerciseuc.Service) *Handler {
	return &Handler{exercises: exercises}
}

// List возвращает все упражнения, отсортированные по названию.
//
//	@Summary	Справочник упражнений
//	@Tags		exercises
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		ExerciseResponse
//	@Failure	401	{object}	response.ErrorResponse
//	@Router		/all-exercises [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.exercises.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(list))
}

func toResponse(list []domain.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ExerciseResponse{
			ExerciseID:  e.ID,
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			Equipment:   e.Equipment,
		})
	}
	return out
}
