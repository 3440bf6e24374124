// internal/repository/mongo/workout_log_repo.go
package mongo

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const workoutLogCollectionName = "workout_logs"

type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new WorkoutLog repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

// Create inserts a completed session.
func (r *mongoWorkoutLogRepository) Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	if log.OwnerID == "" || log.RoutineID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout log requires userId and routine")
	}
	log.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, storeErr(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout log ID")
	}
	return insertedID, nil
}

// GetByID retrieves a workout log by its ID.
func (r *mongoWorkoutLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log); err != nil {
		return nil, storeErr(err)
	}
	return &log, nil
}

// List returns one page of the owner's logs, newest first, plus the total count.
func (r *mongoWorkoutLogRepository) List(ctx context.Context, filter repository.WorkoutLogFilter, page repository.Page) ([]domain.WorkoutLog, int64, error) {
	query := bson.M{"userId": filter.OwnerID}
	if filter.From != nil || filter.To != nil {
		createdAt := bson.M{}
		if filter.From != nil {
			createdAt["$gte"] = filter.From.UTC()
		}
		if filter.To != nil {
			createdAt["$lte"] = filter.To.UTC()
		}
		query["createdAt"] = createdAt
	}

	findOptions := options.Find().SetSort(newestFirst).SetSkip(page.Skip())
	if page.Size > 0 {
		findOptions.SetLimit(int64(page.Size))
	}

	var (
		logs  []domain.WorkoutLog
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := r.collection.Find(gctx, query, findOptions)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &logs)
	})
	g.Go(func() error {
		var err error
		total, err = r.collection.CountDocuments(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, storeErr(err)
	}

	if logs == nil {
		logs = []domain.WorkoutLog{}
	}
	return logs, total, nil
}

// EnsureWorkoutLogIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "routine", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
