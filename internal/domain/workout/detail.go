package workout

import "sort"

// DetailRow — строка соединения sets × exercises для одной тренировки.
type DetailRow struct {
	SetID        int64
	ExerciseID   int64
	ExerciseName string
	Equipment    *string
	SetOrder     int
	Reps         *int
	Weight       *float64
}

// SetEntry подход в детальной карточке тренировки
type SetEntry struct {
	SetOrder int
	Reps     *int
	Weight   *float64
}

// ExerciseDetail — упражнение тренировки со всеми его подходами.
type ExerciseDetail struct {
	ExerciseID int64
	Name       string
	Equipment  *string
	Sets       []SetEntry
}

// Detail — полная карточка тренировки.
type Detail struct {
	WorkoutID   int64
	WorkoutName *string
	Exercises   []ExerciseDetail
}

// GroupDetail группирует строки по упражнению.
// Группы идут в порядке наименьшего set_id, подходы внутри группы - по SetOrder
// (при равенстве - по set_id).
func GroupDetail(w *Workout, rows []DetailRow) *Detail {
	detail := &Detail{
		WorkoutID:   w.ID,
		WorkoutName: w.Name,
		Exercises:   []ExerciseDetail{},
	}
	if len(rows) == 0 {
		return detail
	}

	sorted := make([]DetailRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SetID < sorted[j].SetID
	})

	index := make(map[int64]int)
	for _, r := range sorted {
		pos, ok := index[r.ExerciseID]
		if !ok {
			pos = len(detail.Exercises)
			index[r.ExerciseID] = pos
			detail.Exercises = append(detail.Exercises, ExerciseDetail{
				ExerciseID: r.ExerciseID,
				Name:       r.ExerciseName,
				Equipment:  r.Equipment,
			})
		}
		detail.Exercises[pos].Sets = append(detail.Exercises[pos].Sets, SetEntry{
			SetOrder: r.SetOrder,
			Reps:     r.Reps,
			Weight:   r.Weight,
		})
	}

	// Строки уже упорядочены по set_id, стабильная сортировка сохраняет его при равных SetOrder.
	for i := range detail.Exercises {
		sets := detail.Exercises[i].Sets
		sort.SliceStable(sets, func(a, b int) bool {
			return sets[a].SetOrder < sets[b].SetOrder
		})
	}

	return detail
}
