package workout

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Workout представляет тренировку пользователя.
// CompletedAt == nil означает, что тренировка ещё идёт.
type Workout struct {
	ID          int64
	UserID      uuid.UUID
	Name        *string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// IsCompleted сообщает, завершена ли тренировка.
func (w *Workout) IsCompleted() bool {
	return w.CompletedAt != nil
}

// OwnedBy сообщает, принадлежит ли тренировка пользователю.
func (w *Workout) OwnedBy(userID uuid.UUID) bool {
	return w.UserID == userID
}

// Exercise — справочная запись упражнения.
type Exercise struct {
	ID          int64
	Name        string
	MuscleGroup string
	Equipment   *string
}

// Set — один подход упражнения в рамках тренировки.
// Подход с пустыми Reps или Weight считается незаполненным.
type Set struct {
	ID         int64
	WorkoutID  int64
	ExerciseID int64
	SetOrder   int
	Reps       *int
	Weight     *float64
}

// FirstSetOrder — порядковый номер подхода, создаваемого при добавлении упражнения.
const FirstSetOrder = 1

// Пределы колонок: set_order и reps INTEGER, weight NUMERIC(7,2), name VARCHAR(255).
const (
	MaxSetOrder   = math.MaxInt32
	MaxReps       = math.MaxInt32
	MaxWeight     = 99999.99
	MaxNameLength = 255
)

// ValidReps проверяет, что число повторений помещается в колонку reps.
func ValidReps(reps int) bool {
	return reps >= 0 && int64(reps) <= MaxReps
}

// ValidWeight проверяет вес после округления до сотых, как его сохранит NUMERIC(7,2).
func ValidWeight(weight float64) bool {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return false
	}
	return math.Round(weight*100) <= MaxWeight*100
}

// IsFilled сообщает, записаны ли у подхода и повторения, и вес.
func (s *Set) IsFilled() bool {
	return s.Reps != nil && s.Weight != nil
}

// Volume возвращает объём подхода (reps × weight). Для незаполненного подхода - 0.
func (s *Set) Volume() float64 {
	if !s.IsFilled() {
		return 0
	}
	return float64(*s.Reps) * *s.Weight
}
