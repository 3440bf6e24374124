package memory

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoutineRepository implements repository.RoutineRepository in memory.
type RoutineRepository struct {
	store *Store
}

var _ repository.RoutineRepository = (*RoutineRepository)(nil)

func (r *RoutineRepository) Create(_ context.Context, routine *domain.Routine) (primitive.ObjectID, error) {
	if routine.OwnerID == "" || routine.Name == "" {
		return primitive.NilObjectID, errors.New("routine requires userId and name")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return primitive.NilObjectID, s.failWith
	}

	routine.ID = primitive.NewObjectID()
	now := s.now()
	routine.CreatedAt = now
	routine.UpdatedAt = now
	s.routines[routine.ID] = copyRoutine(*routine)
	return routine.ID, nil
}

func (r *RoutineRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Routine, error) {
	return r.get(id, func(domain.Routine) bool { return true })
}

func (r *RoutineRepository) GetVisible(_ context.Context, id primitive.ObjectID, callerID string) (*domain.Routine, error) {
	return r.get(id, func(rt domain.Routine) bool { return rt.VisibleTo(callerID) })
}

func (r *RoutineRepository) get(id primitive.ObjectID, allow func(domain.Routine) bool) (*domain.Routine, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	rt, ok := s.routines[id]
	if !ok || !allow(rt) {
		return nil, repository.ErrNotFound
	}
	out := copyRoutine(rt)
	return &out, nil
}

func (r *RoutineRepository) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Routine, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	out := []domain.Routine{}
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if rt, ok := s.routines[id]; ok {
			out = append(out, copyRoutine(rt))
		}
	}
	return out, nil
}

func (r *RoutineRepository) ListByOwner(_ context.Context, filter repository.RoutineFilter, page repository.Page) ([]domain.Routine, int64, error) {
	return r.list(func(rt domain.Routine) bool {
		if rt.OwnerID != filter.OwnerID || !rt.IsActive {
			return false
		}
		if filter.Category != "" && string(rt.Category) != filter.Category {
			return false
		}
		if filter.Difficulty != "" && string(rt.Difficulty) != filter.Difficulty {
			return false
		}
		if filter.IsPublic != nil && rt.IsPublic != *filter.IsPublic {
			return false
		}
		return true
	}, page)
}

func (r *RoutineRepository) ListPublic(_ context.Context, limit int) ([]domain.Routine, error) {
	routines, _, err := r.list(func(rt domain.Routine) bool { return rt.IsPublic }, repository.Page{Number: 1, Size: limit})
	return routines, err
}

func (r *RoutineRepository) list(match func(domain.Routine) bool, page repository.Page) ([]domain.Routine, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, 0, s.failWith
	}

	matched := []domain.Routine{}
	for _, rt := range s.routines {
		if match(rt) {
			matched = append(matched, copyRoutine(rt))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return newerFirst(matched[i].CreatedAt, matched[j].CreatedAt, matched[i].ID, matched[j].ID)
	})
	return window(matched, page.Skip(), page.Size), int64(len(matched)), nil
}

func (r *RoutineRepository) Update(_ context.Context, routine *domain.Routine) (*domain.Routine, error) {
	if routine.ID == primitive.NilObjectID {
		return nil, errors.New("routine ID is required for update")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	stored, ok := s.routines[routine.ID]
	if !ok || stored.OwnerID != routine.OwnerID {
		return nil, repository.ErrNotFound
	}

	in := copyRoutine(*routine)
	stored.Name = in.Name
	stored.Description = in.Description
	stored.Exercises = in.Exercises
	stored.Tags = in.Tags
	stored.Difficulty = in.Difficulty
	stored.EstimatedDuration = in.EstimatedDuration
	stored.IsPublic = in.IsPublic
	stored.Category = in.Category
	stored.Equipment = in.Equipment
	stored.UpdatedAt = s.now()
	s.routines[stored.ID] = stored

	out := copyRoutine(stored)
	return &out, nil
}

func (r *RoutineRepository) Delete(_ context.Context, id primitive.ObjectID, ownerID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}

	rt, ok := s.routines[id]
	if !ok || rt.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(s.routines, id)
	return nil
}
