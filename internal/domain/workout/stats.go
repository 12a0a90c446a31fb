package workout

import (
	"sort"
	"time"
)

// StatRow — подход пользователя вместе с данными упражнения и тренировки.
// Репозиторий отдаёт все подходы, включая незаполненные.
type StatRow struct {
	SetID       int64
	WorkoutID   int64
	WorkoutName *string
	CompletedAt *time.Time
	ExerciseID  int64
	Name        string
	MuscleGroup string
	Equipment   *string
	SetOrder    int
	Reps        *int
	Weight      *float64
}

// BestSet — лучший подход упражнения в рамках одной тренировки.
type BestSet struct {
	WorkoutID   int64
	WorkoutName *string
	CompletedAt *time.Time
	ExerciseID  int64
	Name        string
	MuscleGroup string
	Equipment   *string
	Reps        int
	Weight      float64
	TotalSets   int
}

// Volume возвращает объём лучшего подхода.
func (b *BestSet) Volume() float64 {
	return float64(b.Reps) * b.Weight
}

type pairKey struct {
	workoutID  int64
	exerciseID int64
}

type pairState struct {
	best  *StatRow
	total int
}

// SelectBestSets выбирает для каждой пары (тренировка, упражнение) подход с максимальным
// объёмом reps × weight. Учитываются только заполненные подходы; при равном объёме
// выигрывает меньший SetOrder, затем меньший set_id. TotalSets считает все подходы пары.
// Пары без заполненных подходов не попадают в результат.
//
// Результат упорядочен по названию упражнения, затем по времени завершения тренировки
// (новые первыми, незавершённые в конце) и по убыванию id тренировки.
func SelectBestSets(rows []StatRow) []BestSet {
	pairs := make(map[pairKey]*pairState)
	for i := range rows {
		r := &rows[i]
		key := pairKey{workoutID: r.WorkoutID, exerciseID: r.ExerciseID}
		st, ok := pairs[key]
		if !ok {
			st = &pairState{}
			pairs[key] = st
		}
		st.total++

		if r.Reps == nil || r.Weight == nil {
			continue
		}
		if st.best == nil || beats(r, st.best) {
			st.best = r
		}
	}

	result := make([]BestSet, 0, len(pairs))
	for _, st := range pairs {
		if st.best == nil {
			continue
		}
		b := st.best
		result = append(result, BestSet{
			WorkoutID:   b.WorkoutID,
			WorkoutName: b.WorkoutName,
			CompletedAt: b.CompletedAt,
			ExerciseID:  b.ExerciseID,
			Name:        b.Name,
			MuscleGroup: b.MuscleGroup,
			Equipment:   b.Equipment,
			Reps:        *b.Reps,
			Weight:      *b.Weight,
			TotalSets:   st.total,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if !sameTime(a.CompletedAt, b.CompletedAt) {
			return laterFirst(a.CompletedAt, b.CompletedAt)
		}
		if a.WorkoutID != b.WorkoutID {
			return a.WorkoutID > b.WorkoutID
		}
		return a.ExerciseID < b.ExerciseID
	})

	return result
}

func volume(r *StatRow) float64 {
	return float64(*r.Reps) * *r.Weight
}

func beats(candidate, current *StatRow) bool {
	cv, bv := volume(candidate), volume(current)
	if cv != bv {
		return cv > bv
	}
	if candidate.SetOrder != current.SetOrder {
		return candidate.SetOrder < current.SetOrder
	}
	return candidate.SetID < current.SetID
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// laterFirst: nil считается самым ранним.
func laterFirst(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.After(*b)
	}
}
