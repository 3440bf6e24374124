package repository

import (
	"context"
	"fitmanager/routine-service/internal/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
	// ErrUnavailable wraps store timeouts and connectivity failures. Callers may retry.
	ErrUnavailable = RepositoryError("store unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Page is a 1-based page request. Size 0 means "no limit".
type Page struct {
	Number int
	Size   int
}

// Skip is the number of documents before the page.
func (p Page) Skip() int64 {
	if p.Number < 1 || p.Size <= 0 {
		return 0
	}
	return int64(p.Number-1) * int64(p.Size)
}

// ExerciseFilter holds optional catalog filters. Empty fields do not constrain.
type ExerciseFilter struct {
	MuscleGroup string
	Equipment   string
	Difficulty  string
	Search      string // case-insensitive substring of the name
}

// RoutineFilter scopes a routine listing to one owner's active routines.
type RoutineFilter struct {
	OwnerID    string
	Category   string
	Difficulty string
	IsPublic   *bool
}

// WorkoutLogFilter scopes a log listing to one owner, optionally bounded by createdAt
// (both bounds inclusive).
type WorkoutLogFilter struct {
	OwnerID string
	From    *time.Time
	To      *time.Time
}

// ExerciseRepository defines the interface for interacting with the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// CreateMany inserts all exercises in one batch and sets their IDs and timestamps.
	// A failure part-way through may leave a prefix inserted.
	CreateMany(ctx context.Context, exercises []domain.Exercise) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	// GetByIDs returns the exercises that exist; missing ids are silently skipped.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error)
	List(ctx context.Context, filter ExerciseFilter, page Page) ([]domain.Exercise, int64, error)
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context, recentLimit int) (*domain.ExerciseStats, error)
}

// RoutineRepository defines the interface for interacting with routine data.
type RoutineRepository interface {
	Create(ctx context.Context, routine *domain.Routine) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Routine, error)
	// GetVisible returns the routine only if callerID owns it or it is public.
	GetVisible(ctx context.Context, id primitive.ObjectID, callerID string) (*domain.Routine, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Routine, error)
	ListByOwner(ctx context.Context, filter RoutineFilter, page Page) ([]domain.Routine, int64, error)
	ListPublic(ctx context.Context, limit int) ([]domain.Routine, error)
	// Update replaces the mutable fields of the routine matching routine.ID and
	// routine.OwnerID and returns the stored result.
	Update(ctx context.Context, routine *domain.Routine) (*domain.Routine, error)
	Delete(ctx context.Context, id primitive.ObjectID, ownerID string) error
}

// WorkoutLogRepository defines the interface for interacting with workout logs.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error)
	List(ctx context.Context, filter WorkoutLogFilter, page Page) ([]domain.WorkoutLog, int64, error)
}
