package workout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/handler/middleware"
	repo "workout-tracker/internal/repository/interfaces"
	"workout-tracker/internal/repository/mocks"
	workoutuc "workout-tracker/internal/usecase/workout"
)

type fixture struct {
	workouts *mocks.MockWorkoutRepository
	sets     *mocks.MockSetRepository
	router   *gin.Engine
	userID   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := &fixture{
		workouts: mocks.NewMockWorkoutRepository(ctrl),
		sets:     mocks.NewMockSetRepository(ctrl),
		userID:   uuid.New(),
	}

	svc := workoutuc.NewService(f.workouts, f.sets, nil, nil)
	h := NewHandler(svc)

	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) { c.Set(middleware.ContextUserIDKey, f.userID) })
	api.POST("/new-workout", h.Create)
	api.POST("/workout/new-exercises", h.AttachExercises)

	owned := api.Group("/workout/:workoutId", middleware.WorkoutOwner(svc))
	owned.GET("", h.Detail)
	owned.PATCH("", h.UpsertSets)
	owned.PATCH("/completed", h.Complete)
	owned.PATCH("/exercise/:exerciseId", h.SwapExercise)
	owned.DELETE("/exercise/:exerciseId", h.RemoveExercise)

	f.router = r
	return f
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) ownWorkout(id int64) {
	f.workouts.EXPECT().GetByID(gomock.Any(), id).Return(&domain.Workout{ID: id, UserID: f.userID}, nil)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestCreate(t *testing.T) {
	f := newFixture(t)
	f.workouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, w *domain.Workout) error {
		assert.Equal(t, f.userID, w.UserID)
		require.NotNil(t, w.Name)
		assert.Equal(t, "Push day", *w.Name)
		w.ID = 11
		return nil
	})

	w := f.do(http.MethodPost, "/api/new-workout", NewWorkoutRequest{WorkoutName: strPtr("  Push day ")})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp WorkoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.WorkoutID)
	assert.Nil(t, resp.CompletedAt)
}

func TestCreate_EmptyBody(t *testing.T) {
	f := newFixture(t)
	f.workouts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, w *domain.Workout) error {
		assert.Nil(t, w.Name)
		w.ID = 12
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/new-workout", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAttachExercises(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(5)
	f.sets.EXPECT().AttachExercises(gomock.Any(), int64(5), []int64{1, 2}).Return([]domain.Set{
		{ID: 100, WorkoutID: 5, ExerciseID: 1, SetOrder: 1},
		{ID: 101, WorkoutID: 5, ExerciseID: 2, SetOrder: 1},
	}, nil)

	w := f.do(http.MethodPost, "/api/workout/new-exercises", NewExercisesRequest{WorkoutID: 5, ExerciseIDs: []int64{1, 2}})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp []SetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 1, resp[0].SetOrder)
	assert.Nil(t, resp[0].Reps)
	assert.Nil(t, resp[0].Weight)
}

func TestAttachExercises_EmptyListCreatesNothing(t *testing.T) {
	f := newFixture(t)
	f.workouts.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Тренировки 99 нет, но пустой список отклоняется раньше обращения к хранилищу.
	w := f.do(http.MethodPost, "/api/workout/new-exercises", map[string]any{"workoutId": 99, "exerciseIds": []int64{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_input")
}

func TestAttachExercises_ForeignWorkout(t *testing.T) {
	f := newFixture(t)
	f.workouts.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Workout{ID: 5, UserID: uuid.New()}, nil)

	w := f.do(http.MethodPost, "/api/workout/new-exercises", NewExercisesRequest{WorkoutID: 5, ExerciseIDs: []int64{1}})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAttachExercises_UnknownExercise(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(5)
	f.sets.EXPECT().AttachExercises(gomock.Any(), int64(5), []int64{999}).Return(nil, repo.ErrReferenceViolation)

	w := f.do(http.MethodPost, "/api/workout/new-exercises", NewExercisesRequest{WorkoutID: 5, ExerciseIDs: []int64{999}})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "referential_integrity")
}

func TestDetail(t *testing.T) {
	f := newFixture(t)
	name := "Legs"
	f.workouts.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&domain.Workout{ID: 3, UserID: f.userID, Name: &name}, nil)
	f.sets.EXPECT().DetailRows(gomock.Any(), int64(3)).Return([]domain.DetailRow{
		{SetID: 10, ExerciseID: 1, ExerciseName: "Squat", SetOrder: 1, Reps: intPtr(5), Weight: floatPtr(100)},
		{SetID: 12, ExerciseID: 2, ExerciseName: "Lunge", SetOrder: 1},
		{SetID: 13, ExerciseID: 1, ExerciseName: "Squat", SetOrder: 2, Reps: intPtr(3), Weight: floatPtr(110)},
	}, nil)

	w := f.do(http.MethodGet, "/api/workout/3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"workoutId": 3,
		"workoutName": "Legs",
		"exercises": [
			{"exerciseId": 1, "name": "Squat", "equipment": null, "sets": [
				{"setOrder": 1, "reps": 5, "weight": 100},
				{"setOrder": 2, "reps": 3, "weight": 110}
			]},
			{"exerciseId": 2, "name": "Lunge", "equipment": null, "sets": [
				{"setOrder": 1, "reps": null, "weight": null}
			]}
		]
	}`, w.Body.String())
}

func TestDetail_NotFound(t *testing.T) {
	f := newFixture(t)
	f.workouts.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, repo.ErrNotFound)

	w := f.do(http.MethodGet, "/api/workout/3", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertSets(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(4)
	gomock.InOrder(
		f.sets.EXPECT().UpdateFirstSet(gomock.Any(), int64(4), int64(1), intPtr(8), floatPtr(60)).
			Return([]domain.Set{{ID: 1, WorkoutID: 4, ExerciseID: 1, SetOrder: 1}}, nil),
		f.sets.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, s *domain.Set) error {
			assert.Equal(t, 2, s.SetOrder)
			s.ID = 2
			return nil
		}),
		f.workouts.EXPECT().Rename(gomock.Any(), int64(4), strPtr("Upper")).Return(nil),
	)

	body := UpsertRequest{
		WorkoutName: strPtr("Upper"),
		Exercises: []ExerciseSetsRequest{{
			ExerciseID: 1,
			Sets: []SetRequest{
				{SetOrder: 1, Reps: intPtr(8), Weight: floatPtr(60)},
				{SetOrder: 2, Reps: intPtr(6), Weight: floatPtr(65)},
			},
		}},
	}
	w := f.do(http.MethodPatch, "/api/workout/4", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUpsertSets_OutOfRangeValues(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(3)
	f.sets.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	f.sets.EXPECT().UpdateFirstSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := map[string]any{
		"exercises": []map[string]any{{
			"exerciseId": 1,
			"sets":       []map[string]any{{"setOrder": 2, "reps": 5_000_000_000, "weight": 1e9}},
		}},
	}
	w := f.do(http.MethodPatch, "/api/workout/3", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_input")
}

func TestUpsertSets_MissingExercises(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(4)

	w := f.do(http.MethodPatch, "/api/workout/4", map[string]string{"workoutName": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwapExercise(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(4)
	f.sets.EXPECT().SwapExercise(gomock.Any(), int64(4), int64(1), int64(7)).Return([]domain.Set{{ID: 1}}, nil)

	w := f.do(http.MethodPatch, "/api/workout/4/exercise/1", SwapExerciseRequest{NewExerciseID: 7})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSwapExercise_MissingReplacement(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(4)

	w := f.do(http.MethodPatch, "/api/workout/4/exercise/1", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplete(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(4)
	f.workouts.EXPECT().Complete(gomock.Any(), int64(4), strPtr("Morning"), gomock.Any()).
		DoAndReturn(func(_ any, id int64, name *string, at time.Time) (*domain.Workout, error) {
			return &domain.Workout{ID: id, UserID: f.userID, Name: name, CompletedAt: &at}, nil
		})

	w := f.do(http.MethodPatch, "/api/workout/4/completed", CompleteRequest{WorkoutName: " Morning "})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRemoveExercise(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(4)
	f.sets.EXPECT().RemoveExercise(gomock.Any(), int64(4), int64(2)).Return([]domain.Set{{ID: 5}, {ID: 6}}, nil)

	w := f.do(http.MethodDelete, "/api/workout/4/exercise/2", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRemoveExercise_BadExerciseID(t *testing.T) {
	f := newFixture(t)
	f.ownWorkout(4)

	w := f.do(http.MethodDelete, "/api/workout/4/exercise/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
