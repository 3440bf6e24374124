package service

import (
	"context"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// ResolvedRoutine is a routine with its exercise references joined to the catalog.
type ResolvedRoutine struct {
	domain.Routine
	// Exercises[i] is the catalog entry for Routine.Exercises[i]; nil when the
	// reference no longer resolves.
	Exercises []*domain.Exercise
}

// ResolvedWorkoutLog is a log with its routine and exercise references joined.
type ResolvedWorkoutLog struct {
	domain.WorkoutLog
	// Routine is nil when the routine was deleted or is not visible to the caller.
	Routine   *domain.Routine
	Exercises []*domain.Exercise
}

// resolver joins references with one batch read per referenced collection, after the
// primary query.
type resolver struct {
	exerciseRepo repository.ExerciseRepository
	routineRepo  repository.RoutineRepository
}

func (r *resolver) exerciseIndex(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.Exercise, error) {
	index := make(map[primitive.ObjectID]*domain.Exercise, len(ids))
	if len(ids) == 0 {
		return index, nil
	}
	exercises, err := r.exerciseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		index[exercises[i].ID] = &exercises[i]
	}
	return index, nil
}

func (r *resolver) resolveRoutines(ctx context.Context, routines []domain.Routine) ([]ResolvedRoutine, error) {
	var ids idSet
	for _, rt := range routines {
		for _, we := range rt.Exercises {
			ids.add(we.ExerciseID)
		}
	}

	index, err := r.exerciseIndex(ctx, ids.list)
	if err != nil {
		return nil, err
	}

	resolved := make([]ResolvedRoutine, len(routines))
	for i, rt := range routines {
		entries := make([]*domain.Exercise, len(rt.Exercises))
		for j, we := range rt.Exercises {
			entries[j] = index[we.ExerciseID]
		}
		resolved[i] = ResolvedRoutine{Routine: rt, Exercises: entries}
	}
	return resolved, nil
}

func (r *resolver) resolveRoutine(ctx context.Context, routine *domain.Routine) (*ResolvedRoutine, error) {
	resolved, err := r.resolveRoutines(ctx, []domain.Routine{*routine})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// resolveLogs fetches referenced exercises and routines concurrently. A routine is only
// attached when callerID may still see it.
func (r *resolver) resolveLogs(ctx context.Context, callerID string, logs []domain.WorkoutLog) ([]ResolvedWorkoutLog, error) {
	var exerciseIDs, routineIDs idSet
	for _, l := range logs {
		routineIDs.add(l.RoutineID)
		for _, le := range l.Exercises {
			exerciseIDs.add(le.ExerciseID)
		}
	}

	var (
		exercises map[primitive.ObjectID]*domain.Exercise
		routines  = map[primitive.ObjectID]*domain.Routine{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exercises, err = r.exerciseIndex(gctx, exerciseIDs.list)
		return err
	})
	g.Go(func() error {
		if len(routineIDs.list) == 0 {
			return nil
		}
		found, err := r.routineRepo.GetByIDs(gctx, routineIDs.list)
		if err != nil {
			return err
		}
		for i := range found {
			if found[i].VisibleTo(callerID) {
				routines[found[i].ID] = &found[i]
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resolved := make([]ResolvedWorkoutLog, len(logs))
	for i, l := range logs {
		entries := make([]*domain.Exercise, len(l.Exercises))
		for j, le := range l.Exercises {
			entries[j] = exercises[le.ExerciseID]
		}
		resolved[i] = ResolvedWorkoutLog{WorkoutLog: l, Routine: routines[l.RoutineID], Exercises: entries}
	}
	return resolved, nil
}

// idSet collects ids in first-seen order without duplicates.
type idSet struct {
	seen map[primitive.ObjectID]struct{}
	list []primitive.ObjectID
}

func (s *idSet) add(id primitive.ObjectID) {
	if s.seen == nil {
		s.seen = make(map[primitive.ObjectID]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.list = append(s.list, id)
}
