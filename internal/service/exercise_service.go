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

// recentExercisesLimit is the size of the "recent" list in the catalog stats.
const recentExercisesLimit = 5

// ExerciseInput is the create payload for a catalog entry.
type ExerciseInput struct {
	Name         string               `json:"name" validate:"required,min=3,max=100"`
	Description  string               `json:"description" validate:"max=500"`
	MuscleGroups []domain.MuscleGroup `json:"muscleGroups" validate:"dive,oneof=chest back shoulders arms legs core cardio"`
	Equipment    []domain.Equipment   `json:"equipment" validate:"dive,oneof=bodyweight dumbbells barbell machine cable resistance_band kettlebell"`
	Difficulty   domain.Difficulty    `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Instructions []string             `json:"instructions"`
	Tips         []string             `json:"tips"`
	ImageURL     string               `json:"imageUrl" validate:"omitempty,url"`
	VideoURL     string               `json:"videoUrl" validate:"omitempty,url"`
}

// --- Service Interface ---
type ExerciseService interface {
	ListExercises(ctx context.Context, filter repository.ExerciseFilter, page repository.Page) ([]domain.Exercise, int64, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error)
	// BulkCreateExercises validates every element before writing anything.
	BulkCreateExercises(ctx context.Context, inputs []ExerciseInput) ([]domain.Exercise, error)
	// SeedExercises inserts the default catalog into an empty store.
	SeedExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExerciseStats(ctx context.Context) (*domain.ExerciseStats, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	log          logrus.FieldLogger
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, log logrus.FieldLogger) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		log:          log,
	}
}

// ListExercises returns one page of the catalog and the total match count.
func (s *exerciseService) ListExercises(ctx context.Context, filter repository.ExerciseFilter, page repository.Page) ([]domain.Exercise, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.exerciseRepo.List(ctx, filter, page)
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// CreateExercise validates and stores a new catalog entry.
func (s *exerciseService) CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error) {
	exercise, verr := buildExercise(input)
	if verr != nil {
		return nil, verr
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = exerciseID

	s.log.WithFields(logrus.Fields{"exercise_id": exerciseID.Hex(), "name": exercise.Name}).Info("Exercise created")
	return exercise, nil
}

// BulkCreateExercises stops at the first invalid element; the insert that follows is a
// single insert-many and is not transactional.
func (s *exerciseService) BulkCreateExercises(ctx context.Context, inputs []ExerciseInput) ([]domain.Exercise, error) {
	if len(inputs) == 0 {
		return nil, invalid("exercises", `"exercises" must contain at least 1 items`)
	}

	exercises := make([]domain.Exercise, 0, len(inputs))
	for i, input := range inputs {
		exercise, verr := buildExercise(input)
		if verr != nil {
			return nil, &BulkValidationError{Index: i, Name: input.Name, Cause: verr}
		}
		exercises = append(exercises, *exercise)
	}

	if err := s.exerciseRepo.CreateMany(ctx, exercises); err != nil {
		return nil, err
	}

	s.log.WithField("count", len(exercises)).Infof("Bulk created %d exercises", len(exercises))
	return exercises, nil
}

// SeedExercises is a check-then-insert and not atomic: two concurrent seeds on an empty
// catalog can both succeed.
func (s *exerciseService) SeedExercises(ctx context.Context) ([]domain.Exercise, error) {
	count, err := s.exerciseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &SeedConflictError{Count: count}
	}

	exercises := DefaultExercises()
	if err := s.exerciseRepo.CreateMany(ctx, exercises); err != nil {
		return nil, err
	}

	s.log.WithField("count", len(exercises)).Infof("Seeded %d default exercises", len(exercises))
	return exercises, nil
}

// GetExerciseStats aggregates the whole catalog.
func (s *exerciseService) GetExerciseStats(ctx context.Context) (*domain.ExerciseStats, error) {
	return s.exerciseRepo.Stats(ctx, recentExercisesLimit)
}

// buildExercise trims, validates and applies defaults.
func buildExercise(input ExerciseInput) (*domain.Exercise, *ValidationError) {
	input.Name = strings.TrimSpace(input.Name)
	if verr := validateStruct(input); verr != nil {
		return nil, verr
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DefaultExerciseDifficulty
	}

	return &domain.Exercise{
		Name:         input.Name,
		Description:  input.Description,
		MuscleGroups: nonNil(input.MuscleGroups),
		Equipment:    nonNil(input.Equipment),
		Difficulty:   difficulty,
		Instructions: nonNil(input.Instructions),
		Tips:         nonNil(input.Tips),
		ImageURL:     input.ImageURL,
		VideoURL:     input.VideoURL,
	}, nil
}

// nonNil keeps empty lists as [] on the wire and in the store.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
