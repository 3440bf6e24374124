package service

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetInput is one set of a routine entry or a logged exercise. Omitted numbers stay nil.
type SetInput struct {
	Reps      *float64 `json:"reps" validate:"omitempty,min=1,max=1000"`
	Weight    *float64 `json:"weight" validate:"omitempty,min=0,max=1000"`
	Duration  *float64 `json:"duration" validate:"omitempty,min=1,max=3600"` // seconds
	Rest      *float64 `json:"rest" validate:"omitempty,min=0,max=600"`      // seconds
	Completed bool     `json:"completed"`
}

// WorkoutExerciseInput references a catalog exercise by id.
type WorkoutExerciseInput struct {
	Exercise string     `json:"exercise" validate:"required,objectid"`
	Sets     []SetInput `json:"sets" validate:"dive"`
	Notes    string     `json:"notes" validate:"max=500"`
	Order    *int       `json:"order" validate:"omitempty,min=0"`
}

// RoutineInput is the create and full-replace update payload.
type RoutineInput struct {
	Name              string                 `json:"name" validate:"required,min=3,max=100"`
	Description       string                 `json:"description" validate:"max=500"`
	Exercises         []WorkoutExerciseInput `json:"exercises" validate:"dive"`
	Tags              []string               `json:"tags"`
	Difficulty        domain.Difficulty      `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedDuration *int                   `json:"estimatedDuration" validate:"omitempty,min=1,max=480"`
	IsPublic          *bool                  `json:"isPublic"`
	Category          domain.Category        `json:"category" validate:"omitempty,oneof=strength cardio flexibility sports rehabilitation weight_loss muscle_gain"`
	Equipment         []domain.Equipment     `json:"equipment" validate:"dive,oneof=bodyweight dumbbells barbell machine cable resistance_band kettlebell"`
}

// RoutineSummary groups a user's active routines.
type RoutineSummary struct {
	Total        int64
	ByCategory   []domain.CountBucket
	ByDifficulty []domain.CountBucket
	ByDuration   []domain.CountBucket
}

// --- Service Interface ---
type RoutineService interface {
	ListRoutines(ctx context.Context, filter repository.RoutineFilter, page repository.Page) ([]ResolvedRoutine, int64, error)
	ListPopularRoutines(ctx context.Context, limit int) ([]ResolvedRoutine, error)
	// GetRoutine returns ErrRoutineNotFound both for missing routines and for private
	// routines of other users.
	GetRoutine(ctx context.Context, routineID primitive.ObjectID, callerID string) (*ResolvedRoutine, error)
	CreateRoutine(ctx context.Context, ownerID string, input RoutineInput) (*ResolvedRoutine, error)
	UpdateRoutine(ctx context.Context, routineID primitive.ObjectID, callerID string, input RoutineInput) (*ResolvedRoutine, error)
	DeleteRoutine(ctx context.Context, routineID primitive.ObjectID, callerID string) error
	SummarizeRoutines(ctx context.Context, ownerID string) (*RoutineSummary, error)
}

// --- Service Implementation ---

type routineService struct {
	routineRepo repository.RoutineRepository
	resolver    *resolver
	log         logrus.FieldLogger
}

// NewRoutineService creates a new instance of routineService.
func NewRoutineService(routineRepo repository.RoutineRepository, exerciseRepo repository.ExerciseRepository, log logrus.FieldLogger) RoutineService {
	return &routineService{
		routineRepo: routineRepo,
		resolver:    &resolver{exerciseRepo: exerciseRepo, routineRepo: routineRepo},
		log:         log,
	}
}

// ListRoutines returns the owner's active routines.
func (s *routineService) ListRoutines(ctx context.Context, filter repository.RoutineFilter, page repository.Page) ([]ResolvedRoutine, int64, error) {
	routines, total, err := s.routineRepo.ListByOwner(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	resolved, err := s.resolver.resolveRoutines(ctx, routines)
	if err != nil {
		return nil, 0, err
	}
	return resolved, total, nil
}

// ListPopularRoutines returns the newest public routines of all users.
func (s *routineService) ListPopularRoutines(ctx context.Context, limit int) ([]ResolvedRoutine, error) {
	routines, err := s.routineRepo.ListPublic(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.resolver.resolveRoutines(ctx, routines)
}

func (s *routineService) GetRoutine(ctx context.Context, routineID primitive.ObjectID, callerID string) (*ResolvedRoutine, error) {
	routine, err := s.routineRepo.GetVisible(ctx, routineID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return s.resolver.resolveRoutine(ctx, routine)
}

// CreateRoutine stores a new routine owned by ownerID.
func (s *routineService) CreateRoutine(ctx context.Context, ownerID string, input RoutineInput) (*ResolvedRoutine, error) {
	routine, verr := buildRoutine(input)
	if verr != nil {
		return nil, verr
	}
	routine.OwnerID = ownerID
	routine.IsActive = true

	routineID, err := s.routineRepo.Create(ctx, routine)
	if err != nil {
		return nil, err
	}
	routine.ID = routineID

	s.log.WithFields(logrus.Fields{"routine_id": routineID.Hex(), "user_id": ownerID}).Infof("Routine created: %s", routine.Name)
	return s.resolver.resolveRoutine(ctx, routine)
}

// UpdateRoutine replaces every mutable field; omitted fields fall back to their defaults.
// Concurrent updates are last-write-wins.
func (s *routineService) UpdateRoutine(ctx context.Context, routineID primitive.ObjectID, callerID string, input RoutineInput) (*ResolvedRoutine, error) {
	routine, verr := buildRoutine(input)
	if verr != nil {
		return nil, verr
	}
	routine.ID = routineID
	routine.OwnerID = callerID

	updated, err := s.routineRepo.Update(ctx, routine)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"routine_id": routineID.Hex(), "user_id": callerID}).Infof("Routine updated: %s", updated.Name)
	return s.resolver.resolveRoutine(ctx, updated)
}

// DeleteRoutine hard-deletes an owned routine. Logs that reference it keep the id.
func (s *routineService) DeleteRoutine(ctx context.Context, routineID primitive.ObjectID, callerID string) error {
	err := s.routineRepo.Delete(ctx, routineID, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.WithFields(logrus.Fields{"routine_id": routineID.Hex(), "user_id": callerID}).Warn("No routine found to delete")
			return ErrRoutineNotFound
		}
		return err
	}

	s.log.WithFields(logrus.Fields{"routine_id": routineID.Hex(), "user_id": callerID}).Info("Routine deleted")
	return nil
}

// SummarizeRoutines groups all of the owner's active routines.
func (s *routineService) SummarizeRoutines(ctx context.Context, ownerID string) (*RoutineSummary, error) {
	routines, _, err := s.routineRepo.ListByOwner(ctx, repository.RoutineFilter{OwnerID: ownerID}, repository.Page{Number: 1})
	if err != nil {
		return nil, err
	}
	summary := Summarize(routines)
	return &summary, nil
}

// Summarize counts routines by category, difficulty and duration bucket.
func Summarize(routines []domain.Routine) RoutineSummary {
	byCategory := map[string]int64{}
	byDifficulty := map[string]int64{}
	byDuration := map[string]int64{}
	for _, rt := range routines {
		byCategory[string(rt.Category)]++
		byDifficulty[string(rt.Difficulty)]++
		byDuration[string(domain.BucketForDuration(rt.EstimatedDuration))]++
	}
	return RoutineSummary{
		Total:        int64(len(routines)),
		ByCategory:   domain.BucketsFromCounts(byCategory),
		ByDifficulty: domain.BucketsFromCounts(byDifficulty),
		ByDuration:   domain.BucketsFromCounts(byDuration),
	}
}

// buildRoutine trims, validates and applies defaults. Owner, id and isActive are set by
// the caller.
func buildRoutine(input RoutineInput) (*domain.Routine, *ValidationError) {
	input.Name = strings.TrimSpace(input.Name)
	if verr := validateStruct(input); verr != nil {
		return nil, verr
	}

	entries := make([]domain.WorkoutExercise, len(input.Exercises))
	for i, in := range input.Exercises {
		exerciseID, _ := primitive.ObjectIDFromHex(in.Exercise) // shape checked by the objectid rule
		order := i
		if in.Order != nil {
			order = *in.Order
		}
		entries[i] = domain.WorkoutExercise{
			ExerciseID: exerciseID,
			Sets:       buildSets(in.Sets),
			Notes:      in.Notes,
			Order:      order,
		}
	}

	routine := &domain.Routine{
		Name:              input.Name,
		Description:       input.Description,
		Exercises:         entries,
		Tags:              nonNil(input.Tags),
		Difficulty:        input.Difficulty,
		EstimatedDuration: domain.DefaultEstimatedDuration,
		Category:          input.Category,
		Equipment:         nonNil(input.Equipment),
	}
	if routine.Difficulty == "" {
		routine.Difficulty = domain.DefaultRoutineDifficulty
	}
	if routine.Category == "" {
		routine.Category = domain.DefaultRoutineCategory
	}
	if input.EstimatedDuration != nil {
		routine.EstimatedDuration = *input.EstimatedDuration
	}
	if input.IsPublic != nil {
		routine.IsPublic = *input.IsPublic
	}
	return routine, nil
}

func buildSets(in []SetInput) []domain.Set {
	sets := make([]domain.Set, len(in))
	for i, s := range in {
		sets[i] = domain.Set{
			Reps:      s.Reps,
			Weight:    s.Weight,
			Duration:  s.Duration,
			Rest:      s.Rest,
			Completed: s.Completed,
		}
	}
	return sets
}
