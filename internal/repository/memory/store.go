// Package memory is an in-process implementation of the repository interfaces. It backs
// the service and handler tests and honours the same ordering, filtering and ownership
// rules as the MongoDB implementation.
package memory

import (
	"bytes"
	"fitmanager/routine-service/internal/domain"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds all three collections behind one lock.
type Store struct {
	mu          sync.RWMutex
	exercises   map[primitive.ObjectID]domain.Exercise
	routines    map[primitive.ObjectID]domain.Routine
	workoutLogs map[primitive.ObjectID]domain.WorkoutLog
	failWith    error
	now         func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		exercises:   make(map[primitive.ObjectID]domain.Exercise),
		routines:    make(map[primitive.ObjectID]domain.Routine),
		workoutLogs: make(map[primitive.ObjectID]domain.WorkoutLog),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// SetClock overrides the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Exercises returns the exercise repository view of the store.
func (s *Store) Exercises() *ExerciseRepository {
	return &ExerciseRepository{store: s}
}

// Routines returns the routine repository view of the store.
func (s *Store) Routines() *RoutineRepository {
	return &RoutineRepository{store: s}
}

// WorkoutLogs returns the workout log repository view of the store.
func (s *Store) WorkoutLogs() *WorkoutLogRepository {
	return &WorkoutLogRepository{store: s}
}

// newerFirst orders by createdAt desc, then id desc.
func newerFirst(aCreated, bCreated time.Time, aID, bID primitive.ObjectID) bool {
	if !aCreated.Equal(bCreated) {
		return aCreated.After(bCreated)
	}
	return bytes.Compare(aID[:], bID[:]) > 0
}

// window applies skip/limit to an already ordered slice.
func window[T any](items []T, skip int64, size int) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	items = items[skip:]
	if size > 0 && len(items) > size {
		items = items[:size]
	}
	return items
}

func copySets(sets []domain.Set) []domain.Set {
	if sets == nil {
		return nil
	}
	out := make([]domain.Set, len(sets))
	for i, s := range sets {
		out[i] = domain.Set{
			Reps:      copyPtr(s.Reps),
			Weight:    copyPtr(s.Weight),
			Duration:  copyPtr(s.Duration),
			Rest:      copyPtr(s.Rest),
			Completed: s.Completed,
		}
	}
	return out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copySlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func copyExercise(e domain.Exercise) domain.Exercise {
	e.MuscleGroups = copySlice(e.MuscleGroups)
	e.Equipment = copySlice(e.Equipment)
	e.Instructions = copySlice(e.Instructions)
	e.Tips = copySlice(e.Tips)
	return e
}

func copyRoutine(r domain.Routine) domain.Routine {
	if r.Exercises != nil {
		entries := make([]domain.WorkoutExercise, len(r.Exercises))
		for i, we := range r.Exercises {
			we.Sets = copySets(we.Sets)
			entries[i] = we
		}
		r.Exercises = entries
	}
	r.Tags = copySlice(r.Tags)
	r.Equipment = copySlice(r.Equipment)
	return r
}

func copyWorkoutLog(l domain.WorkoutLog) domain.WorkoutLog {
	if l.Exercises != nil {
		entries := make([]domain.LoggedExercise, len(l.Exercises))
		for i, le := range l.Exercises {
			le.Sets = copySets(le.Sets)
			entries[i] = le
		}
		l.Exercises = entries
	}
	l.EndTime = copyPtr(l.EndTime)
	l.Duration = copyPtr(l.Duration)
	l.Rating = copyPtr(l.Rating)
	return l
}
