package user

import (
	"time"

	domain "workout-tracker/internal/domain/workout"
)

// BestSetResponse — лучший подход упражнения в тренировке.
type BestSetResponse struct {
	WorkoutID   int64      `json:"workoutId"`
	WorkoutName *string    `json:"workoutName"`
	CompletedAt *time.Time `json:"completedAt"`
	ExerciseID  int64      `json:"exerciseId"`
	Name        string     `json:"name"`
	MuscleGroup string     `json:"muscleGroup"`
	Equipment   *string    `json:"equipment"`
	Reps        int        `json:"reps"`
	Weight      float64    `json:"weight"`
	Volume      float64    `json:"volume"`
	TotalSets   int        `json:"totalSets"`
}

func toBestSetResponses(list []domain.BestSet) []BestSetResponse {
	out := make([]BestSetResponse, 0, len(list))
	for i := range list {
		b := &list[i]
		out = append(out, BestSetResponse{
			WorkoutID:   b.WorkoutID,
			WorkoutName: b.WorkoutName,
			CompletedAt: b.CompletedAt,
			ExerciseID:  b.ExerciseID,
			Name:        b.Name,
			MuscleGroup: b.MuscleGroup,
			Equipment:   b.Equipment,
			Reps:        b.Reps,
			Weight:      b.Weight,
			Volume:      b.Volume(),
			TotalSets:   b.TotalSets,
		})
	}
	return out
}
