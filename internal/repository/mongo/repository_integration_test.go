//go:build integration

package mongo

import (
	"context"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExerciseRepository_ListFiltersAndPaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMongoExerciseRepository(db)
	ctx := context.Background()

	batch := []domain.Exercise{
		{Name: "Sentadillas", MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs}, Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Difficulty: domain.DifficultyBeginner},
		{Name: "Press de Banca", MuscleGroups: []domain.MuscleGroup{domain.MuscleChest}, Equipment: []domain.Equipment{domain.EquipmentBarbell}, Difficulty: domain.DifficultyIntermediate},
		{Name: "Zancadas", MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs}, Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.DifficultyBeginner},
	}
	require.NoError(t, repo.CreateMany(ctx, batch))
	for _, e := range batch {
		assert.False(t, e.ID.IsZero())
	}

	legs, total, err := repo.List(ctx, repository.ExerciseFilter{MuscleGroup: "legs", Difficulty: "beginner"}, repository.Page{Number: 1, Size: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, legs, 2)

	found, total, err := repo.List(ctx, repository.ExerciseFilter{Search: "sentad"}, repository.Page{Number: 1, Size: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, found, 1)
	assert.Equal(t, "Sentadillas", found[0].Name)

	// Regex metacharacters are matched literally.
	none, total, err := repo.List(ctx, repository.ExerciseFilter{Search: ".*"}, repository.Page{Number: 1, Size: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, none)

	page2, total, err := repo.List(ctx, repository.ExerciseFilter{}, repository.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page2, 1)
}

func TestExerciseRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMongoExerciseRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateMany(ctx, []domain.Exercise{
		{Name: "Burpees", MuscleGroups: []domain.MuscleGroup{domain.MuscleCardio, domain.MuscleLegs}, Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Difficulty: domain.DifficultyIntermediate},
		{Name: "Sentadillas", MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs}, Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Difficulty: domain.DifficultyBeginner},
		{Name: "Plancha", MuscleGroups: []domain.MuscleGroup{}, Equipment: []domain.Equipment{}, Difficulty: domain.DifficultyBeginner},
	}))

	stats, err := repo.Stats(ctx, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.Equal(t, []domain.CountBucket{{Key: "legs", Count: 2}, {Key: "cardio", Count: 1}}, stats.ByMuscleGroup)
	assert.Equal(t, []domain.CountBucket{{Key: "beginner", Count: 2}, {Key: "intermediate", Count: 1}}, stats.ByDifficulty)
	assert.Equal(t, []domain.CountBucket{{Key: "bodyweight", Count: 2}}, stats.ByEquipment)
	assert.Len(t, stats.Recent, 3)
}

func TestExerciseRepository_GetByIDsSkipsMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMongoExerciseRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.Exercise{Name: "Dominadas", Difficulty: domain.DifficultyAdvanced})
	require.NoError(t, err)

	got, err := repo.GetByIDs(ctx, []primitive.ObjectID{id, primitive.NewObjectID()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)

	_, err = repo.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRoutineRepository_VisibilityAndOwnership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMongoRoutineRepository(db)
	ctx := context.Background()

	private := &domain.Routine{Name: "Privada", OwnerID: "alice", IsActive: true, Category: domain.CategoryStrength, Difficulty: domain.DifficultyBeginner, EstimatedDuration: 30}
	privateID, err := repo.Create(ctx, private)
	require.NoError(t, err)

	public := &domain.Routine{Name: "Publica", OwnerID: "alice", IsActive: true, IsPublic: true, Category: domain.CategoryCardio, Difficulty: domain.DifficultyBeginner, EstimatedDuration: 45}
	publicID, err := repo.Create(ctx, public)
	require.NoError(t, err)

	_, err = repo.GetVisible(ctx, privateID, "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := repo.GetVisible(ctx, publicID, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Publica", got.Name)

	popular, err := repo.ListPublic(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, publicID, popular[0].ID)

	isPublic := false
	owned, total, err := repo.ListByOwner(ctx, repository.RoutineFilter{OwnerID: "alice", IsPublic: &isPublic}, repository.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, owned, 1)
	assert.Equal(t, privateID, owned[0].ID)

	// Bob cannot update or delete Alice's routine.
	_, err = repo.Update(ctx, &domain.Routine{ID: privateID, OwnerID: "bob", Name: "Robada"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, privateID, "bob"), repository.ErrNotFound)

	updated, err := repo.Update(ctx, &domain.Routine{ID: privateID, OwnerID: "alice", Name: "Renombrada", Category: domain.CategoryFlexibility, Difficulty: domain.DifficultyAdvanced, EstimatedDuration: 90})
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", updated.Name)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "alice", updated.OwnerID)

	require.NoError(t, repo.Delete(ctx, privateID, "alice"))
	assert.ErrorIs(t, repo.Delete(ctx, privateID, "alice"), repository.ErrNotFound)
}

func TestWorkoutLogRepository_DateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMongoWorkoutLogRepository(db)
	ctx := context.Background()

	routineID := primitive.NewObjectID()
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.WorkoutLog{OwnerID: "alice", RoutineID: routineID, StartTime: time.Now().UTC()})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.WorkoutLog{OwnerID: "bob", RoutineID: routineID, StartTime: time.Now().UTC()})
	require.NoError(t, err)

	logs, total, err := repo.List(ctx, repository.WorkoutLogFilter{OwnerID: "alice"}, repository.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, logs, 2)

	future := time.Now().Add(time.Hour)
	logs, total, err = repo.List(ctx, repository.WorkoutLogFilter{OwnerID: "alice", From: &future}, repository.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, logs)
}
