package workout

import (
	"time"

	domain "workout-tracker/internal/domain/workout"
	workoutuc "workout-tracker/internal/usecase/workout"
)

// NewWorkoutRequest — тело POST /new-workout. Тело целиком необязательно.
type NewWorkoutRequest struct {
	WorkoutName *string `json:"workoutName"`
}

// NewExercisesRequest — тело POST /workout/new-exercises.
// UserID принимается для совместимости клиента, владелец определяется по токену.
type NewExercisesRequest struct {
	WorkoutID   int64   `json:"workoutId" binding:"required"`
	ExerciseIDs []int64 `json:"exerciseIds"`
	UserID      *string `json:"userId,omitempty"`
}

// SetRequest описывает один подход в теле PATCH /workout/:workoutId
type SetRequest struct {
	SetOrder int      `json:"setOrder"`
	Reps     *int     `json:"reps"`
	Weight   *float64 `json:"weight"`
}

// ExerciseSetsRequest содержит подходы одного упражнения
type ExerciseSetsRequest struct {
	ExerciseID int64        `json:"exerciseId"`
	Sets       []SetRequest `json:"sets"`
}

// UpsertRequest — состояние тренировки, присланное клиентом.
type UpsertRequest struct {
	WorkoutName *string               `json:"workoutName"`
	Exercises   []ExerciseSetsRequest `json:"exercises"`
}

// SwapExerciseRequest — тело PATCH /workout/:workoutId/exercise/:exerciseId.
type SwapExerciseRequest struct {
	NewExerciseID int64 `json:"newExerciseId"`
}

// CompleteRequest — тело PATCH /workout/:workoutId/completed.
type CompleteRequest struct {
	WorkoutName string `json:"workoutName"`
}

// WorkoutResponse — строка тренировки.
type WorkoutResponse struct {
	WorkoutID   int64      `json:"workoutId"`
	UserID      string     `json:"userId"`
	WorkoutName *string    `json:"workoutName"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// SetResponse строка подхода
type SetResponse struct {
	SetID      int64    `json:"setId"`
	WorkoutID  int64    `json:"workoutId"`
	ExerciseID int64    `json:"exerciseId"`
	SetOrder   int      `json:"setOrder"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
}

type DetailSetResponse struct {
	SetOrder int      `json:"setOrder"`
	Reps     *int     `json:"reps"`
	Weight   *float64 `json:"weight"`
}

// DetailExerciseResponse — упражнение в карточке тренировки.
type DetailExerciseResponse struct {
	ExerciseID int64               `json:"exerciseId"`
	Name       string              `json:"name"`
	Equipment  *string             `json:"equipment"`
	Sets       []DetailSetResponse `json:"sets"`
}

// DetailResponse — карточка тренировки.
type DetailResponse struct {
	WorkoutID   int64                    `json:"workoutId"`
	WorkoutName *string                  `json:"workoutName"`
	Exercises   []DetailExerciseResponse `json:"exercises"`
}

func (r *UpsertRequest) toInput() workoutuc.UpsertInput {
	in := workoutuc.UpsertInput{WorkoutName: r.WorkoutName}
	if r.Exercises == nil {
		return in
	}
	in.Exercises = make([]workoutuc.ExerciseSetsInput, 0, len(r.Exercises))
	for _, e := range r.Exercises {
		sets := make([]workoutuc.SetInput, 0, len(e.Sets))
		for _, s := range e.Sets {
			sets = append(sets, workoutuc.SetInput{SetOrder: s.SetOrder, Reps: s.Reps, Weight: s.Weight})
		}
		in.Exercises = append(in.Exercises, workoutuc.ExerciseSetsInput{ExerciseID: e.ExerciseID, Sets: sets})
	}
	return in
}

// ToWorkoutResponse переводит доменную тренировку в DTO.
func ToWorkoutResponse(w *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		WorkoutID:   w.ID,
		UserID:      w.UserID.String(),
		WorkoutName: w.Name,
		CreatedAt:   w.CreatedAt,
		CompletedAt: w.CompletedAt,
	}
}

// ToWorkoutResponses переводит список тренировок; nil превращается в пустой список.
func ToWorkoutResponses(list []domain.Workout) []WorkoutResponse {
	out := make([]WorkoutResponse, 0, len(list))
	for i := range list {
		out = append(out, ToWorkoutResponse(&list[i]))
	}
	return out
}

func toSetResponses(sets []domain.Set) []SetResponse {
	out := make([]SetResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, SetResponse{
			SetID:      s.ID,
			WorkoutID:  s.WorkoutID,
			ExerciseID: s.ExerciseID,
			SetOrder:   s.SetOrder,
			Reps:       s.Reps,
			Weight:     s.Weight,
		})
	}
	return out
}

func toDetailResponse(d *domain.Detail) DetailResponse {
	resp := DetailResponse{
		WorkoutID:   d.WorkoutID,
		WorkoutName: d.WorkoutName,
		Exercises:   make([]DetailExerciseResponse, 0, len(d.Exercises)),
	}
	for _, e := range d.Exercises {
		sets := make([]DetailSetResponse, 0, len(e.Sets))
		for _, s := range e.Sets {
			sets = append(sets, DetailSetResponse{SetOrder: s.SetOrder, Reps: s.Reps, Weight: s.Weight})
		}
		resp.Exercises = append(resp.Exercises, DetailExerciseResponse{
			ExerciseID: e.ExerciseID,
			Name:       e.Name,
			Equipment:  e.Equipment,
			Sets:       sets,
		})
	}
	return resp
}
