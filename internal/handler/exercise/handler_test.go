package exercise

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/repository/mocks"
	exerciseuc "workout-tracker/internal/usecase/exercise"
)

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockExerciseRepository(ctrl)

	cable := "cable"
	repoMock.EXPECT().List(gomock.Any()).Return([]domain.Exercise{
		{ID: 3, Name: "Cable Fly", MuscleGroup: "chest", Equipment: &cable},
		{ID: 9, Name: "Push-Up", MuscleGroup: "chest"},
	}, nil)

	r := gin.New()
	r.GET("/api/all-exercises", NewHandler(exerciseuc.NewService(repoMock, 1, 0)).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/all-exercises", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"exerciseId":3,"name":"Cable Fly","muscleGroup":"chest","equipment":"cable"},
		{"exerciseId":9,"name":"Push-Up","muscleGroup":"chest","equipment":null}
	]`, w.Body.String())
}

func TestList_RepositoryError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockExerciseRepository(ctrl)
	repoMock.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	r := gin.New()
	r.GET("/api/all-exercises", NewHandler(exerciseuc.NewService(repoMock, 1, 0)).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/all-exercises", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
