package workout

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
	"workout-tracker/pkg/logger"
)

// SetInput — данные одного подхода от клиента.
type SetInput struct {
	SetOrder int
	Reps     *int
	Weight   *float64
}

// ExerciseSetsInput — подходы одного упражнения.
type ExerciseSetsInput struct {
	ExerciseID int64
	Sets       []SetInput
}

// UpsertInput — состояние тренировки, присланное клиентом.
// Exercises == nil считается ошибкой валидации, пустой срез допустим.
type UpsertInput struct {
	WorkoutName *string
	Exercises   []ExerciseSetsInput
}

// Observer получает уведомления о бизнес-событиях (метрики).
type Observer interface {
	WorkoutCreated()
	WorkoutCompleted()
	WorkoutsPurged(n int64)
}

type nopObserver struct{}

func (nopObserver) WorkoutCreated() {}

func (nopObserver) WorkoutCompleted() {}

func (nopObserver) WorkoutsPurged(int64) {}

// Service описывает операции над тренировками, упражнениями в них и подходами.
type Service interface {
	// Create создаёт незавершённую тренировку пользователя.
	Create(ctx context.Context, userID uuid.UUID, name *string) (*domain.Workout, error)

	// AttachExercises добавляет упражнения в тренировку пользователя: по одному пустому
	// подходу set_order = 1 на упражнение, одним запросом. Владелец проверяется после
	// валидации списка.
	AttachExercises(ctx context.Context, userID uuid.UUID, workoutID int64, exerciseIDs []int64) ([]domain.Set, error)

	// UpsertSets сверяет присланные подходы с хранилищем: set_order = 1 обновляется
	// на месте (или создаётся, если строки нет), остальные подходы добавляются.
	// Запросы независимы, при ошибке уже записанные изменения остаются.
	UpsertSets(ctx context.Context, workoutID int64, input UpsertInput) ([]domain.Set, error)

	// Complete завершает тренировку: проставляет время завершения и название.
	Complete(ctx context.Context, workoutID int64, name string) (*domain.Workout, error)

	// SwapExercise заменяет упражнение во всех его подходах тренировки.
	SwapExercise(ctx context.Context, workoutID, currentID, newID int64) ([]domain.Set, error)

	// RemoveExercise удаляет все подходы упражнения из тренировки.
	RemoveExercise(ctx context.Context, workoutID, exerciseID int64) ([]domain.Set, error)

	// PurgeAbandoned удаляет незавершённые тренировки пользователя вместе с подходами.
	PurgeAbandoned(ctx context.Context, userID uuid.UUID) (int64, error)

	// Detail возвращает карточку тренировки с подходами, сгруппированными по упражнениям.
	Detail(ctx context.Context, w *domain.Workout) (*domain.Detail, error)

	// BestSets возвращает лучший подход по каждой паре (тренировка, упражнение) пользователя.
	BestSets(ctx context.Context, userID uuid.UUID) ([]domain.BestSet, error)

	// ListCompleted возвращает завершённые тренировки пользователя.
	ListCompleted(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error)

	// Authorize проверяет, что тренировка существует и принадлежит пользователю.
	Authorize(ctx context.Context, userID uuid.UUID, workoutID int64) (*domain.Workout, error)
}

type service struct {
	workouts repo.WorkoutRepository
	sets     repo.SetRepository
	observer Observer
	log      logger.Logger
	now      func() time.Time
}

// NewService создаёт workout usecase-сервис. observer и log могут быть nil.
func NewService(
	workouts repo.WorkoutRepository,
	sets repo.SetRepository,
	observer Observer,
	log logger.Logger,
) Service {
	if observer == nil {
		observer = nopObserver{}
	}
	if log == nil {
		log = logger.Default()
	}
	return &service{
		workouts: workouts,
		sets:     sets,
		observer: observer,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, name *string) (*domain.Workout, error) {
	if userID == uuid.Nil {
		return nil, invalidInput("user id is required")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	w := &domain.Workout{
		UserID:    userID,
		Name:      normalizeName(name),
		CreatedAt: s.now(),
	}
	if err := s.workouts.Create(ctx, w); err != nil {
		return nil, err
	}

	s.observer.WorkoutCreated()
	return w, nil
}

func (s *service) AttachExercises(
	ctx context.Context,
	userID uuid.UUID,
	workoutID int64,
	exerciseIDs []int64,
) ([]domain.Set, error) {
	if workoutID <= 0 {
		return nil, invalidInput("workout id is required")
	}
	if len(exerciseIDs) == 0 {
		return nil, invalidInput("exercise ids must not be empty")
	}
	for _, id := range exerciseIDs {
		if id <= 0 {
			return nil, invalidInput("exercise id %d is invalid", id)
		}
	}

	if _, err := s.Authorize(ctx, userID, workoutID); err != nil {
		return nil, err
	}
	return s.sets.AttachExercises(ctx, workoutID, exerciseIDs)
}

func (s *service) UpsertSets(ctx context.Context, workoutID int64, input UpsertInput) ([]domain.Set, error) {
	if err := validateUpsert(workoutID, input); err != nil {
		return nil, err
	}

	affected := make([]domain.Set, 0)
	for _, ex := range input.Exercises {
		for _, in := range ex.Sets {
			if in.SetOrder == domain.FirstSetOrder {
				rows, err := s.upsertFirstSet(ctx, workoutID, ex.ExerciseID, in)
				if err != nil {
					return affected, s.partialFailure(workoutID, len(affected), err)
				}
				affected = append(affected, rows...)
				continue
			}

			set := domain.Set{
				WorkoutID:  workoutID,
				ExerciseID: ex.ExerciseID,
				SetOrder:   in.SetOrder,
				Reps:       in.Reps,
				Weight:     in.Weight,
			}
			if err := s.sets.Insert(ctx, &set); err != nil {
				return affected, s.partialFailure(workoutID, len(affected), err)
			}
			affected = append(affected, set)
		}
	}

	if input.WorkoutName != nil {
		if err := s.workouts.Rename(ctx, workoutID, normalizeName(input.WorkoutName)); err != nil {
			return affected, s.partialFailure(workoutID, len(affected), err)
		}
	}

	return affected, nil
}

// upsertFirstSet обновляет первый подход, а если строки нет - создаёт её.
func (s *service) upsertFirstSet(ctx context.Context, workoutID, exerciseID int64, in SetInput) ([]domain.Set, error) {
	rows, err := s.sets.UpdateFirstSet(ctx, workoutID, exerciseID, in.Reps, in.Weight)
	if err == nil {
		return rows, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	set := domain.Set{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		SetOrder:   domain.FirstSetOrder,
		Reps:       in.Reps,
		Weight:     in.Weight,
	}
	if err := s.sets.Insert(ctx, &set); err != nil {
		return nil, err
	}
	return []domain.Set{set}, nil
}

func (s *service) partialFailure(workoutID int64, written int, err error) error {
	if written > 0 {
		s.log.Error("workout upsert stopped after partial write", map[string]any{
			"workout_id":   workoutID,
			"rows_written": written,
			"error":        err.Error(),
		})
	}
	return err
}

func validateUpsert(workoutID int64, input UpsertInput) error {
	if workoutID <= 0 {
		return invalidInput("workout id is required")
	}
	if input.Exercises == nil {
		return invalidInput("exercises are required")
	}
	if err := validateName(input.WorkoutName); err != nil {
		return err
	}
	for _, ex := range input.Exercises {
		if ex.ExerciseID <= 0 {
			return invalidInput("exercise id %d is invalid", ex.ExerciseID)
		}
		for _, set := range ex.Sets {
			if set.SetOrder < domain.FirstSetOrder || int64(set.SetOrder) > domain.MaxSetOrder {
				return invalidInput("set order must be between %d and %d", domain.FirstSetOrder, domain.MaxSetOrder)
			}
			if set.Reps != nil && !domain.ValidReps(*set.Reps) {
				return invalidInput("reps must be between 0 and %d", domain.MaxReps)
			}
			if set.Weight != nil && !domain.ValidWeight(*set.Weight) {
				return invalidInput("weight must be between 0 and %.2f", domain.MaxWeight)
			}
		}
	}
	return nil
}

func (s *service) Complete(ctx context.Context, workoutID int64, name string) (*domain.Workout, error) {
	if workoutID <= 0 {
		return nil, invalidInput("workout id is required")
	}
	if err := validateName(&name); err != nil {
		return nil, err
	}

	w, err := s.workouts.Complete(ctx, workoutID, normalizeName(&name), s.now())
	if err != nil {
		return nil, err
	}

	s.observer.WorkoutCompleted()
	return w, nil
}

func (s *service) SwapExercise(ctx context.Context, workoutID, currentID, newID int64) ([]domain.Set, error) {
	if workoutID <= 0 {
		return nil, invalidInput("workout id is required")
	}
	if currentID <= 0 || newID <= 0 {
		return nil, invalidInput("exercise ids are required")
	}

	return s.sets.SwapExercise(ctx, workoutID, currentID, newID)
}

func (s *service) RemoveExercise(ctx context.Context, workoutID, exerciseID int64) ([]domain.Set, error) {
	if workoutID <= 0 {
		return nil, invalidInput("workout id is required")
	}
	if exerciseID <= 0 {
		return nil, invalidInput("exercise id is required")
	}

	return s.sets.RemoveExercise(ctx, workoutID, exerciseID)
}

func (s *service) PurgeAbandoned(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, invalidInput("user id is required")
	}

	n, err := s.workouts.PurgeAbandoned(ctx, userID)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		s.observer.WorkoutsPurged(n)
		s.log.Info("abandoned workouts purged", map[string]any{
			"user_id": userID.String(),
			"count":   n,
		})
	}
	return n, nil
}

func (s *service) Detail(ctx context.Context, w *domain.Workout) (*domain.Detail, error) {
	if w == nil || w.ID <= 0 {
		return nil, invalidInput("workout is required")
	}

	rows, err := s.sets.DetailRows(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	return domain.GroupDetail(w, rows), nil
}

func (s *service) BestSets(ctx context.Context, userID uuid.UUID) ([]domain.BestSet, error) {
	rows, err := s.sets.StatRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.SelectBestSets(rows), nil
}

func (s *service) ListCompleted(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error) {
	return s.workouts.ListCompleted(ctx, userID)
}

func (s *service) Authorize(ctx context.Context, userID uuid.UUID, workoutID int64) (*domain.Workout, error) {
	if workoutID <= 0 {
		return nil, invalidInput("workout id is required")
	}

	w, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if !w.OwnedBy(userID) {
		return nil, ErrForbidden
	}
	return w, nil
}

func validateName(name *string) error {
	if name != nil && utf8.RuneCountInString(strings.TrimSpace(*name)) > domain.MaxNameLength {
		return invalidInput("workout name must be at most %d characters", domain.MaxNameLength)
	}
	return nil
}

// normalizeName обрезает пробелы; пустое название хранится как NULL.
// Единое правило для Create, UpsertSets и Complete.
func normalizeName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
