package memory

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseRepository implements repository.ExerciseRepository in memory.
type ExerciseRepository struct {
	store *Store
}

var _ repository.ExerciseRepository = (*ExerciseRepository)(nil)

func (r *ExerciseRepository) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return primitive.NilObjectID, s.failWith
	}

	exercise.ID = primitive.NewObjectID()
	now := s.now()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	s.exercises[exercise.ID] = copyExercise(*exercise)
	return exercise.ID, nil
}

func (r *ExerciseRepository) CreateMany(_ context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return errors.New("no exercises to insert")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}

	now := s.now()
	for i := range exercises {
		exercises[i].ID = primitive.NewObjectID()
		exercises[i].CreatedAt = now
		exercises[i].UpdatedAt = now
		s.exercises[exercises[i].ID] = copyExercise(exercises[i])
	}
	return nil
}

func (r *ExerciseRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	e, ok := s.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := copyExercise(e)
	return &out, nil
}

func (r *ExerciseRepository) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	out := []domain.Exercise{}
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if e, ok := s.exercises[id]; ok {
			out = append(out, copyExercise(e))
		}
	}
	return out, nil
}

func (r *ExerciseRepository) List(_ context.Context, filter repository.ExerciseFilter, page repository.Page) ([]domain.Exercise, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, 0, s.failWith
	}

	matched := []domain.Exercise{}
	for _, e := range s.exercises {
		if matchesExercise(e, filter) {
			matched = append(matched, copyExercise(e))
		}
	}
	sortExercises(matched)
	return window(matched, page.Skip(), page.Size), int64(len(matched)), nil
}

func (r *ExerciseRepository) Count(_ context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	return int64(len(s.exercises)), nil
}

func (r *ExerciseRepository) Stats(_ context.Context, recentLimit int) (*domain.ExerciseStats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	byMuscle := map[string]int64{}
	byDifficulty := map[string]int64{}
	byEquipment := map[string]int64{}
	named := []domain.Exercise{}
	for _, e := range s.exercises {
		for _, m := range e.MuscleGroups {
			if m != "" {
				byMuscle[string(m)]++
			}
		}
		if e.Difficulty != "" {
			byDifficulty[string(e.Difficulty)]++
		}
		for _, eq := range e.Equipment {
			if eq != "" {
				byEquipment[string(eq)]++
			}
		}
		if e.Name != "" {
			named = append(named, e)
		}
	}

	sortExercises(named)
	named = window(named, 0, recentLimit)
	recent := make([]domain.RecentExercise, len(named))
	for i, e := range named {
		recent[i] = domain.RecentExercise{
			Name:         e.Name,
			Difficulty:   e.Difficulty,
			MuscleGroups: copySlice(e.MuscleGroups),
			CreatedAt:    e.CreatedAt,
		}
	}

	return &domain.ExerciseStats{
		Total:         int64(len(s.exercises)),
		ByMuscleGroup: domain.BucketsFromCounts(byMuscle),
		ByDifficulty:  domain.BucketsFromCounts(byDifficulty),
		ByEquipment:   domain.BucketsFromCounts(byEquipment),
		Recent:        recent,
	}, nil
}

func matchesExercise(e domain.Exercise, f repository.ExerciseFilter) bool {
	if f.MuscleGroup != "" && !containsValue(e.MuscleGroups, domain.MuscleGroup(f.MuscleGroup)) {
		return false
	}
	if f.Equipment != "" && !containsValue(e.Equipment, domain.Equipment(f.Equipment)) {
		return false
	}
	if f.Difficulty != "" && string(e.Difficulty) != f.Difficulty {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func containsValue[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func sortExercises(items []domain.Exercise) {
	sort.Slice(items, func(i, j int) bool {
		return newerFirst(items[i].CreatedAt, items[j].CreatedAt, items[i].ID, items[j].ID)
	})
}
