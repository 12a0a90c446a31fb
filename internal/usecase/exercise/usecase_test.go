package exercise_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	domain "workout-tracker/internal/domain/workout"
	"workout-tracker/internal/repository/mocks"
	"workout-tracker/internal/usecase/exercise"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestList_CachesCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockExerciseRepository(ctrl)

	barbell := "barbell"
	catalog := []domain.Exercise{
		{ID: 1, Name: "Bench Press", MuscleGroup: "chest", Equipment: &barbell},
		{ID: 2, Name: "Pull-Up", MuscleGroup: "back"},
	}
	repoMock.EXPECT().List(gomock.Any()).Return(catalog, nil).Times(1)

	svc := exercise.NewService(repoMock, 1, time.Minute)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, first)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, second)
	assert.Nil(t, second[1].Equipment)
}

func TestList_ErrorIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockExerciseRepository(ctrl)

	gomock.InOrder(
		repoMock.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down")),
		repoMock.EXPECT().List(gomock.Any()).Return([]domain.Exercise{{ID: 1, Name: "Squat"}}, nil),
	)

	svc := exercise.NewService(repoMock, 1, time.Minute)

	_, err := svc.List(context.Background())
	require.Error(t, err)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
