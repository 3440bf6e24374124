package memory

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExerciseRepository_NewestFirstAndPaging(t *testing.T) {
	store := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})
	repo := store.Exercises()
	ctx := context.Background()

	for _, name := range []string{"uno", "dos", "tres"} {
		_, err := repo.Create(ctx, &domain.Exercise{Name: name})
		require.NoError(t, err)
	}

	items, total, err := repo.List(ctx, repository.ExerciseFilter{}, repository.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "tres", items[0].Name)
	assert.Equal(t, "dos", items[1].Name)

	items, _, err = repo.List(ctx, repository.ExerciseFilter{}, repository.Page{Number: 5, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExerciseRepository_StatsSkipsEmptyValues(t *testing.T) {
	store := NewStore()
	repo := store.Exercises()
	ctx := context.Background()

	require.NoError(t, repo.CreateMany(ctx, []domain.Exercise{
		{Name: "a", MuscleGroups: []domain.MuscleGroup{"legs", ""}, Difficulty: domain.DifficultyBeginner},
		{Name: "b", MuscleGroups: []domain.MuscleGroup{"chest"}, Equipment: []domain.Equipment{"barbell"}},
		{Name: "c", MuscleGroups: []domain.MuscleGroup{"legs"}, Difficulty: domain.DifficultyBeginner},
	}))

	stats, err := repo.Stats(ctx, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.Equal(t, []domain.CountBucket{{Key: "legs", Count: 2}, {Key: "chest", Count: 1}}, stats.ByMuscleGroup)
	assert.Equal(t, []domain.CountBucket{{Key: "beginner", Count: 2}}, stats.ByDifficulty)
	assert.Equal(t, []domain.CountBucket{{Key: "barbell", Count: 1}}, stats.ByEquipment)
	assert.Len(t, stats.Recent, 3)
}

func TestRoutineRepository_ReturnsCopies(t *testing.T) {
	store := NewStore()
	repo := store.Routines()
	ctx := context.Background()

	reps := 10.0
	routine := &domain.Routine{
		Name:     "Piernas",
		OwnerID:  "alice",
		IsActive: true,
		Exercises: []domain.WorkoutExercise{
			{ExerciseID: primitive.NewObjectID(), Sets: []domain.Set{{Reps: &reps}}},
		},
	}
	id, err := repo.Create(ctx, routine)
	require.NoError(t, err)

	*routine.Exercises[0].Sets[0].Reps = 99
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10.0, *got.Exercises[0].Sets[0].Reps)
}

func TestStore_FailWith(t *testing.T) {
	store := NewStore()
	boom := errors.New("boom")
	store.FailWith(boom)

	_, err := store.WorkoutLogs().GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, boom)

	store.FailWith(nil)
	_, err = store.WorkoutLogs().GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
