package mongo

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the catalog.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, storeErr(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// CreateMany inserts the batch with a single ordered insert-many.
func (r *mongoExerciseRepository) CreateMany(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return errors.New("no exercises to insert")
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(exercises))
	for i := range exercises {
		exercises[i].ID = primitive.NewObjectID()
		exercises[i].CreatedAt = now
		exercises[i].UpdatedAt = now
		docs[i] = exercises[i]
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return storeErr(err)
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		return nil, storeErr(err)
	}
	return &exercise, nil
}

// GetByIDs batch-fetches the referenced exercises for read-time resolution.
func (r *mongoExerciseRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	if len(ids) == 0 {
		return exercises, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, storeErr(err)
	}
	return exercises, nil
}

// List returns one page of the catalog and the total number of matches. The page and
// the count are fetched concurrently.
func (r *mongoExerciseRepository) List(ctx context.Context, filter repository.ExerciseFilter, page repository.Page) ([]domain.Exercise, int64, error) {
	query := exerciseQuery(filter)

	findOptions := options.Find().SetSort(newestFirst).SetSkip(page.Skip())
	if page.Size > 0 {
		findOptions.SetLimit(int64(page.Size))
	}

	var (
		exercises []domain.Exercise
		total     int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := r.collection.Find(gctx, query, findOptions)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &exercises)
	})
	g.Go(func() error {
		var err error
		total, err = r.collection.CountDocuments(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, storeErr(err)
	}

	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, total, nil
}

// Count returns the catalog size.
func (r *mongoExerciseRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	return n, storeErr(err)
}

// Stats runs the catalog aggregations concurrently.
func (r *mongoExerciseRepository) Stats(ctx context.Context, recentLimit int) (*domain.ExerciseStats, error) {
	stats := &domain.ExerciseStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Total, err = r.collection.CountDocuments(gctx, bson.M{})
		return err
	})
	g.Go(func() error {
		var err error
		stats.ByMuscleGroup, err = r.aggregateBuckets(gctx, unwindCountPipeline("muscleGroups"))
		return err
	})
	g.Go(func() error {
		var err error
		stats.ByDifficulty, err = r.aggregateBuckets(gctx, scalarCountPipeline("difficulty"))
		return err
	})
	g.Go(func() error {
		var err error
		stats.ByEquipment, err = r.aggregateBuckets(gctx, unwindCountPipeline("equipment"))
		return err
	})
	g.Go(func() error {
		findOptions := options.Find().
			SetSort(newestFirst).
			SetLimit(int64(recentLimit)).
			SetProjection(bson.M{"name": 1, "difficulty": 1, "muscleGroups": 1, "createdAt": 1})
		cursor, err := r.collection.Find(gctx, bson.M{"name": nonEmpty()}, findOptions)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		stats.Recent = []domain.RecentExercise{}
		return cursor.All(gctx, &stats.Recent)
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr(err)
	}
	return stats, nil
}

func (r *mongoExerciseRepository) aggregateBuckets(ctx context.Context, pipeline mongo.Pipeline) ([]domain.CountBucket, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	buckets := []domain.CountBucket{}
	if err = cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

// unwindCountPipeline counts an array field once per contained value.
func unwindCountPipeline(field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: bson.M{"$exists": true, "$ne": bson.A{}}}}},
		{{Key: "$unwind", Value: "$" + field}},
		{{Key: "$match", Value: bson.M{field: nonEmpty()}}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

func scalarCountPipeline(field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: nonEmpty()}}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
}

func nonEmpty() bson.M {
	return bson.M{"$exists": true, "$nin": bson.A{nil, ""}}
}

func exerciseQuery(filter repository.ExerciseFilter) bson.M {
	query := bson.M{}
	if filter.MuscleGroup != "" {
		query["muscleGroups"] = filter.MuscleGroup
	}
	if filter.Equipment != "" {
		query["equipment"] = filter.Equipment
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}
	return query
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "muscleGroups", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "equipment", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "difficulty", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
