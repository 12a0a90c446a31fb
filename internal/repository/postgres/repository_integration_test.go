//go:build integration

package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	userdomain "workout-tracker/internal/domain/user"
	domain "workout-tracker/internal/domain/workout"
	repo "workout-tracker/internal/repository/interfaces"
	"workout-tracker/internal/testutil/pgtest"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	inst, err := pgtest.Start()
	if err != nil {
		log.Fatalf("start test postgres: %s", err)
	}

	testDB = inst.DB.DB
	code := m.Run()

	inst.Close()
	os.Exit(code)
}

type fixture struct {
	users     *UserRepository
	workouts  *WorkoutRepository
	sets      *SetRepository
	exercises []domain.Exercise
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	exercises, err := NewExerciseRepository(testDB).List(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(exercises), 3, "seed migration must provide exercises")

	return &fixture{
		users:     NewUserRepository(testDB),
		workouts:  NewWorkoutRepository(testDB),
		sets:      NewSetRepository(testDB),
		exercises: exercises,
	}
}

func (f *fixture) newUser(t *testing.T) *userdomain.User {
	t.Helper()
	u := userdomain.NewUser(gofakeit.Username()+gofakeit.DigitN(6), "hash")
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) newWorkout(t *testing.T, u *userdomain.User) *domain.Workout {
	t.Helper()
	name := gofakeit.Word()
	w := &domain.Workout{UserID: u.ID, Name: &name, CreatedAt: time.Now().UTC()}
	require.NoError(t, f.workouts.Create(context.Background(), w))
	require.NotZero(t, w.ID)
	return w
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.newUser(t)

	got, err := f.users.GetByUsername(ctx, u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	dup := userdomain.NewUser(u.Username, "other")
	assert.ErrorIs(t, f.users.Create(ctx, dup), repo.ErrUsernameExists)

	_, err = f.users.GetByUsername(ctx, "missing-"+gofakeit.UUID())
	assert.ErrorIs(t, err, repo.ErrNotFound)

	names, err := f.users.ListUsernames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, u.Username)
}

func TestSetRepository_AttachAndUpsertFirstSet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.newWorkout(t, f.newUser(t))
	ex := f.exercises[0]

	created, err := f.sets.AttachExercises(ctx, w.ID, []int64{ex.ID, f.exercises[1].ID})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, 1, created[0].SetOrder)
	assert.Nil(t, created[0].Reps)
	assert.Nil(t, created[0].Weight)

	updated, err := f.sets.UpdateFirstSet(ctx, w.ID, ex.ID, intPtr(5), floatPtr(100))
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, created[0].ID, updated[0].ID)
	assert.Equal(t, 100.0, *updated[0].Weight)

	rows, err := f.sets.DetailRows(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "first set is updated in place")

	_, err = f.sets.UpdateFirstSet(ctx, w.ID, f.exercises[2].ID, intPtr(1), floatPtr(1))
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSetRepository_AttachUnknownExerciseIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.newWorkout(t, f.newUser(t))

	_, err := f.sets.AttachExercises(ctx, w.ID, []int64{f.exercises[0].ID, 987654321})
	assert.ErrorIs(t, err, repo.ErrReferenceViolation)

	rows, err := f.sets.DetailRows(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSetRepository_AppendSwapRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	w := f.newWorkout(t, f.newUser(t))
	a, b, c := f.exercises[0].ID, f.exercises[1].ID, f.exercises[2].ID

	_, err := f.sets.AttachExercises(ctx, w.ID, []int64{a, b})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		s := &domain.Set{WorkoutID: w.ID, ExerciseID: a, SetOrder: 2, Reps: intPtr(8), Weight: floatPtr(60)}
		require.NoError(t, f.sets.Insert(ctx, s))
		require.NotZero(t, s.ID)
	}

	swapped, err := f.sets.SwapExercise(ctx, w.ID, a, c)
	require.NoError(t, err)
	assert.Len(t, swapped, 3)
	for _, s := range swapped {
		assert.Equal(t, c, s.ExerciseID)
	}

	_, err = f.sets.SwapExercise(ctx, w.ID, c, 987654321)
	assert.ErrorIs(t, err, repo.ErrReferenceViolation)

	removed, err := f.sets.RemoveExercise(ctx, w.ID, c)
	require.NoError(t, err)
	assert.Len(t, removed, 3)

	rows, err := f.sets.DetailRows(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, b, rows[0].ExerciseID)
}

func TestWorkoutRepository_CompleteListAndPurge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.newUser(t)
	other := f.newUser(t)

	done := f.newWorkout(t, owner)
	abandoned := f.newWorkout(t, owner)
	foreign := f.newWorkout(t, other)
	_, err := f.sets.AttachExercises(ctx, abandoned.ID, []int64{f.exercises[0].ID})
	require.NoError(t, err)

	name := "Push day"
	completed, err := f.workouts.Complete(ctx, done.ID, &name, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, "Push day", *completed.Name)

	require.NoError(t, f.workouts.Rename(ctx, done.ID, nil))
	renamed, err := f.workouts.GetByID(ctx, done.ID)
	require.NoError(t, err)
	assert.Nil(t, renamed.Name)

	_, err = f.workouts.Complete(ctx, 987654321, nil, time.Now().UTC())
	assert.ErrorIs(t, err, repo.ErrNotFound)

	list, err := f.workouts.ListCompleted(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, done.ID, list[0].ID)

	purged, err := f.workouts.PurgeAbandoned(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = f.workouts.GetByID(ctx, abandoned.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	rows, err := f.sets.DetailRows(ctx, abandoned.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = f.workouts.GetByID(ctx, done.ID)
	assert.NoError(t, err)
	_, err = f.workouts.GetByID(ctx, foreign.ID)
	assert.NoError(t, err, fmt.Sprintf("workout %d of another user must survive", foreign.ID))
}

func TestSetRepository_StatRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.newUser(t)
	w := f.newWorkout(t, u)
	ex := f.exercises[0].ID

	_, err := f.sets.AttachExercises(ctx, w.ID, []int64{ex})
	require.NoError(t, err)
	_, err = f.sets.UpdateFirstSet(ctx, w.ID, ex, intPtr(5), floatPtr(100))
	require.NoError(t, err)
	require.NoError(t, f.sets.Insert(ctx, &domain.Set{WorkoutID: w.ID, ExerciseID: ex, SetOrder: 2, Reps: intPtr(3), Weight: floatPtr(150)}))

	rows, err := f.sets.StatRows(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	best := domain.SelectBestSets(rows)
	require.Len(t, best, 1)
	assert.Equal(t, 5, best[0].Reps)
	assert.Equal(t, 2, best[0].TotalSets)
}
