package service

import (
	"context"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggedExerciseInput is the performed copy of one exercise.
type LoggedExerciseInput struct {
	Exercise string     `json:"exercise" validate:"required,objectid"`
	Sets     []SetInput `json:"sets" validate:"dive"`
	Notes    string     `json:"notes" validate:"max=500"`
}

// WorkoutLogInput is the create payload of a workout log.
type WorkoutLogInput struct {
	Routine   string                `json:"routine" validate:"required,objectid"`
	Exercises []LoggedExerciseInput `json:"exercises" validate:"dive"`
	StartTime *time.Time            `json:"startTime"`
	EndTime   *time.Time            `json:"endTime"`
	Duration  *float64              `json:"duration" validate:"omitempty,min=1,max=480"` // minutes
	Notes     string                `json:"notes" validate:"max=500"`
	Rating    *int                  `json:"rating" validate:"omitempty,min=1,max=5"`
}

// --- Service Interface ---
type WorkoutLogService interface {
	ListWorkoutLogs(ctx context.Context, filter repository.WorkoutLogFilter, page repository.Page) ([]ResolvedWorkoutLog, int64, error)
	// CreateWorkoutLog stores a snapshot of what was performed. Later edits to the
	// routine never change it.
	CreateWorkoutLog(ctx context.Context, ownerID string, input WorkoutLogInput) (*ResolvedWorkoutLog, error)
}

// --- Service Implementation ---

type workoutLogService struct {
	workoutLogRepo repository.WorkoutLogRepository
	resolver       *resolver
	log            logrus.FieldLogger
	now            func() time.Time
}

// NewWorkoutLogService creates a new instance of workoutLogService.
func NewWorkoutLogService(workoutLogRepo repository.WorkoutLogRepository, routineRepo repository.RoutineRepository, exerciseRepo repository.ExerciseRepository, log logrus.FieldLogger) WorkoutLogService {
	return &workoutLogService{
		workoutLogRepo: workoutLogRepo,
		resolver:       &resolver{exerciseRepo: exerciseRepo, routineRepo: routineRepo},
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// ListWorkoutLogs returns the owner's logs, newest first.
func (s *workoutLogService) ListWorkoutLogs(ctx context.Context, filter repository.WorkoutLogFilter, page repository.Page) ([]ResolvedWorkoutLog, int64, error) {
	logs, total, err := s.workoutLogRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	resolved, err := s.resolver.resolveLogs(ctx, filter.OwnerID, logs)
	if err != nil {
		return nil, 0, err
	}
	return resolved, total, nil
}

func (s *workoutLogService) CreateWorkoutLog(ctx context.Context, ownerID string, input WorkoutLogInput) (*ResolvedWorkoutLog, error) {
	if verr := validateStruct(input); verr != nil {
		return nil, verr
	}

	routineID, _ := primitive.ObjectIDFromHex(input.Routine)
	entries := make([]domain.LoggedExercise, len(input.Exercises))
	for i, in := range input.Exercises {
		exerciseID, _ := primitive.ObjectIDFromHex(in.Exercise)
		entries[i] = domain.LoggedExercise{
			ExerciseID: exerciseID,
			Sets:       buildSets(in.Sets),
			Notes:      in.Notes,
		}
	}

	startTime := s.now()
	if input.StartTime != nil {
		startTime = input.StartTime.UTC()
	}
	var endTime *time.Time
	if input.EndTime != nil {
		t := input.EndTime.UTC()
		endTime = &t
	}

	workoutLog := &domain.WorkoutLog{
		OwnerID:   ownerID,
		RoutineID: routineID,
		Exercises: entries,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  input.Duration,
		Notes:     input.Notes,
		Rating:    input.Rating,
	}

	logID, err := s.workoutLogRepo.Create(ctx, workoutLog)
	if err != nil {
		return nil, err
	}
	workoutLog.ID = logID

	s.log.WithFields(logrus.Fields{"workout_log_id": logID.Hex(), "user_id": ownerID}).Info("Workout log created")

	resolved, err := s.resolver.resolveLogs(ctx, ownerID, []domain.WorkoutLog{*workoutLog})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}
