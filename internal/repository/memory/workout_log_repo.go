package memory

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutLogRepository implements repository.WorkoutLogRepository in memory.
type WorkoutLogRepository struct {
	store *Store
}

var _ repository.WorkoutLogRepository = (*WorkoutLogRepository)(nil)

func (r *WorkoutLogRepository) Create(_ context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if log.OwnerID == "" || log.RoutineID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout log requires userId and routine")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return primitive.NilObjectID, s.failWith
	}

	log.ID = primitive.NewObjectID()
	now := s.now()
	log.CreatedAt = now
	log.UpdatedAt = now
	s.workoutLogs[log.ID] = copyWorkoutLog(*log)
	return log.ID, nil
}

func (r *WorkoutLogRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	l, ok := s.workoutLogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := copyWorkoutLog(l)
	return &out, nil
}

func (r *WorkoutLogRepository) List(_ context.Context, filter repository.WorkoutLogFilter, page repository.Page) ([]domain.WorkoutLog, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failWith != nil {
		return nil, 0, s.failWith
	}

	matched := []domain.WorkoutLog{}
	for _, l := range s.workoutLogs {
		if l.OwnerID != filter.OwnerID {
			continue
		}
		if filter.From != nil && l.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && l.CreatedAt.After(*filter.To) {
			continue
		}
		matched = append(matched, copyWorkoutLog(l))
	}
	sort.Slice(matched, func(i, j int) bool {
		return newerFirst(matched[i].CreatedAt, matched[j].CreatedAt, matched[i].ID, matched[j].ID)
	})
	return window(matched, page.Skip(), page.Size), int64(len(matched)), nil
}
