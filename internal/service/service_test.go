package service

import (
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"fitmanager/routine-service/internal/repository/memory"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	store       *memory.Store
	logs        *test.Hook
	exercises   ExerciseService
	routines    RoutineService
	workoutLogs WorkoutLogService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()

	// Strictly increasing timestamps keep newest-first ordering deterministic.
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	store.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return &fixture{
		store:       store,
		logs:        hook,
		exercises:   NewExerciseService(store.Exercises(), log),
		routines:    NewRoutineService(store.Routines(), store.Exercises(), log),
		workoutLogs: NewWorkoutLogService(store.WorkoutLogs(), store.Routines(), store.Exercises(), log),
	}
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) createExercise(t *testing.T, name string) *domain.Exercise {
	t.Helper()
	ex, err := f.exercises.CreateExercise(t.Context(), ExerciseInput{
		Name:         name,
		MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs},
		Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
	})
	require.NoError(t, err)
	return ex
}

func TestCreateExercise_AppliesDefaults(t *testing.T) {
	f := newFixture(t)

	ex, err := f.exercises.CreateExercise(t.Context(), ExerciseInput{
		Name:         "  Sentadillas  ",
		MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs},
		Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
	})
	require.NoError(t, err)

	assert.False(t, ex.ID.IsZero())
	assert.Equal(t, "Sentadillas", ex.Name)
	assert.Equal(t, domain.DifficultyBeginner, ex.Difficulty)
	assert.Equal(t, []string{}, ex.Instructions)
	assert.False(t, ex.CreatedAt.IsZero())

	entry := f.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Exercise created", entry.Message)
	assert.Equal(t, "Sentadillas", entry.Data["name"])
}

func TestCreateExercise_ValidationMessages(t *testing.T) {
	tests := []struct {
		name  string
		input ExerciseInput
		field string
		msg   string
	}{
		{
			name:  "name too short",
			input: ExerciseInput{Name: "ab"},
			field: "name",
			msg:   `"name" length must be at least 3 characters long`,
		},
		{
			name:  "name missing",
			input: ExerciseInput{Name: "   "},
			field: "name",
			msg:   `"name" is required`,
		},
		{
			name:  "unknown muscle group",
			input: ExerciseInput{Name: "Plancha", MuscleGroups: []domain.MuscleGroup{"neck"}},
			field: "muscleGroups[0]",
			msg:   `"muscleGroups[0]" must be one of [chest, back, shoulders, arms, legs, core, cardio]`,
		},
		{
			name:  "bad difficulty",
			input: ExerciseInput{Name: "Plancha", Difficulty: "expert"},
			field: "difficulty",
			msg:   `"difficulty" must be one of [beginner, intermediate, advanced]`,
		},
		{
			name:  "bad image url",
			input: ExerciseInput{Name: "Plancha", ImageURL: "not a url"},
			field: "imageUrl",
			msg:   `"imageUrl" must be a valid uri`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.exercises.CreateExercise(t.Context(), tt.input)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.msg, verr.Message)

			count, err := f.store.Exercises().Count(t.Context())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestGetExerciseByID_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.exercises.GetExerciseByID(t.Context(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestListExercises_FiltersAndTrimsSearch(t *testing.T) {
	f := newFixture(t)
	f.createExercise(t, "Sentadillas")
	f.createExercise(t, "Sentadilla Búlgara")
	f.createExercise(t, "Zancadas")

	items, total, err := f.exercises.ListExercises(t.Context(),
		repository.ExerciseFilter{Search: " sentadilla ", MuscleGroup: "legs"},
		repository.Page{Number: 1, Size: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Sentadilla Búlgara", items[0].Name, "newest first")
}

func TestBulkCreateExercises_OneInvalidWritesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.exercises.BulkCreateExercises(t.Context(), []ExerciseInput{
		{Name: "Sentadillas"},
		{Name: "ab"},
		{Name: "Zancadas"},
	})

	var berr *BulkValidationError
	require.ErrorAs(t, err, &berr)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, 1, berr.Index)
	assert.Equal(t, `Validation error for exercise "ab" (index 1): "name" length must be at least 3 characters long`, err.Error())

	count, err := f.store.Exercises().Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBulkCreateExercises(t *testing.T) {
	f := newFixture(t)

	_, err := f.exercises.BulkCreateExercises(t.Context(), nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "exercises", verr.Field)

	created, err := f.exercises.BulkCreateExercises(t.Context(), []ExerciseInput{
		{Name: "Sentadillas"},
		{Name: "Zancadas", Difficulty: domain.DifficultyIntermediate},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, ex := range created {
		assert.False(t, ex.ID.IsZero())
	}
	assert.Equal(t, "Bulk created 2 exercises", f.logs.LastEntry().Message)
}

func TestSeedExercises_Twice(t *testing.T) {
	f := newFixture(t)

	seeded, err := f.exercises.SeedExercises(t.Context())
	require.NoError(t, err)
	assert.Len(t, seeded, len(DefaultExercises()))

	_, err = f.exercises.SeedExercises(t.Context())
	var conflict *SeedConflictError
	require.ErrorAs(t, err, &conflict)
	assert.ErrorIs(t, err, ErrExercisesAlreadySeeded)
	assert.Equal(t, int64(len(seeded)), conflict.Count)

	count, err := f.store.Exercises().Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(len(seeded)), count)
}

func TestDefaultExercises_CoverCatalog(t *testing.T) {
	muscles := map[domain.MuscleGroup]bool{}
	difficulties := map[domain.Difficulty]bool{}
	for _, ex := range DefaultExercises() {
		require.Nil(t, validateStruct(ExerciseInput{
			Name:         ex.Name,
			Description:  ex.Description,
			MuscleGroups: ex.MuscleGroups,
			Equipment:    ex.Equipment,
			Difficulty:   ex.Difficulty,
		}), ex.Name)
		for _, m := range ex.MuscleGroups {
			muscles[m] = true
		}
		difficulties[ex.Difficulty] = true
	}
	assert.Len(t, muscles, 7)
	assert.Len(t, difficulties, 3)
}

func TestGetExerciseStats(t *testing.T) {
	f := newFixture(t)
	_, err := f.exercises.SeedExercises(t.Context())
	require.NoError(t, err)

	stats, err := f.exercises.GetExerciseStats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultExercises())), stats.Total)
	assert.Len(t, stats.Recent, recentExercisesLimit)
	require.NotEmpty(t, stats.ByMuscleGroup)
	for i := 1; i < len(stats.ByMuscleGroup); i++ {
		assert.GreaterOrEqual(t, stats.ByMuscleGroup[i-1].Count, stats.ByMuscleGroup[i].Count)
	}
}

func TestServices_PropagateStoreErrors(t *testing.T) {
	f := newFixture(t)
	f.store.FailWith(repository.ErrUnavailable)

	_, _, err := f.exercises.ListExercises(t.Context(), repository.ExerciseFilter{}, repository.Page{Number: 1, Size: 20})
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	_, err = f.routines.GetRoutine(t.Context(), primitive.NewObjectID(), "u1")
	assert.ErrorIs(t, err, repository.ErrUnavailable)
	assert.False(t, errors.Is(err, ErrRoutineNotFound))
}
