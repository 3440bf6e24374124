// internal/repository/mongo/routine_repo.go
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

const routineCollectionName = "routines"

// mongoRoutineRepository implements repository.RoutineRepository
type mongoRoutineRepository struct {
	collection *mongo.Collection
}

// NewMongoRoutineRepository creates a new Routine repository.
func NewMongoRoutineRepository(db *mongo.Database) repository.RoutineRepository {
	return &mongoRoutineRepository{
		collection: db.Collection(routineCollectionName),
	}
}

// Create inserts a new routine.
func (r *mongoRoutineRepository) Create(ctx context.Context, routine *domain.Routine) (primitive.ObjectID, error) {
	if routine.OwnerID == "" || routine.Name == "" {
		return primitive.NilObjectID, errors.New("routine requires userId and name")
	}
	routine.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	routine.CreatedAt = now
	routine.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, routine)
	if err != nil {
		return primitive.NilObjectID, storeErr(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted routine ID")
	}
	return insertedID, nil
}

// GetByID retrieves a routine regardless of owner.
func (r *mongoRoutineRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Routine, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetVisible retrieves a routine the caller owns or that is public.
func (r *mongoRoutineRepository) GetVisible(ctx context.Context, id primitive.ObjectID, callerID string) (*domain.Routine, error) {
	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"userId": callerID},
			bson.M{"isPublic": true},
		},
	}
	return r.findOne(ctx, filter)
}

func (r *mongoRoutineRepository) findOne(ctx context.Context, filter bson.M) (*domain.Routine, error) {
	var routine domain.Routine
	if err := r.collection.FindOne(ctx, filter).Decode(&routine); err != nil {
		return nil, storeErr(err)
	}
	return &routine, nil
}

// GetByIDs batch-fetches routines for workout log resolution.
func (r *mongoRoutineRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Routine, error) {
	routines := []domain.Routine{}
	if len(ids) == 0 {
		return routines, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &routines); err != nil {
		return nil, storeErr(err)
	}
	return routines, nil
}

// ListByOwner returns one page of the owner's active routines plus the total count.
func (r *mongoRoutineRepository) ListByOwner(ctx context.Context, filter repository.RoutineFilter, page repository.Page) ([]domain.Routine, int64, error) {
	query := bson.M{
		"userId":   filter.OwnerID,
		"isActive": true,
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}
	if filter.IsPublic != nil {
		query["isPublic"] = *filter.IsPublic
	}

	findOptions := options.Find().SetSort(newestFirst).SetSkip(page.Skip())
	if page.Size > 0 {
		findOptions.SetLimit(int64(page.Size))
	}

	var (
		routines []domain.Routine
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := r.collection.Find(gctx, query, findOptions)
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &routines)
	})
	g.Go(func() error {
		var err error
		total, err = r.collection.CountDocuments(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, storeErr(err)
	}

	if routines == nil {
		routines = []domain.Routine{}
	}
	return routines, total, nil
}

// ListPublic returns the newest public routines of any owner.
func (r *mongoRoutineRepository) ListPublic(ctx context.Context, limit int) ([]domain.Routine, error) {
	findOptions := options.Find().SetSort(newestFirst)
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"isPublic": true}, findOptions)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	routines := []domain.Routine{}
	if err = cursor.All(ctx, &routines); err != nil {
		return nil, storeErr(err)
	}
	return routines, nil
}

// Update overwrites the mutable fields of an owned routine and returns the stored document.
// Owner, isActive and createdAt are never part of the update.
func (r *mongoRoutineRepository) Update(ctx context.Context, routine *domain.Routine) (*domain.Routine, error) {
	if routine.ID == primitive.NilObjectID {
		return nil, errors.New("routine ID is required for update")
	}

	filter := bson.M{"_id": routine.ID, "userId": routine.OwnerID}
	updateDoc := bson.M{
		"$set": bson.M{
			"name":              routine.Name,
			"description":       routine.Description,
			"exercises":         routine.Exercises,
			"tags":              routine.Tags,
			"difficulty":        routine.Difficulty,
			"estimatedDuration": routine.EstimatedDuration,
			"isPublic":          routine.IsPublic,
			"category":          routine.Category,
			"equipment":         routine.Equipment,
			"updatedAt":         time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Routine
	if err := r.collection.FindOneAndUpdate(ctx, filter, updateDoc, opts).Decode(&updated); err != nil {
		return nil, storeErr(err)
	}
	return &updated, nil
}

// Delete removes an owned routine. Workout logs referencing it are left alone.
func (r *mongoRoutineRepository) Delete(ctx context.Context, id primitive.ObjectID, ownerID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": ownerID})
	if err != nil {
		return storeErr(err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRoutineIndexes creates necessary indexes. Call during startup.
func EnsureRoutineIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Owner listing: active routines newest first
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "isPublic", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
