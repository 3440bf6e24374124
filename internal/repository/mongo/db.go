package mongo

import (
	"context"
	"errors"
	"fitmanager/routine-service/internal/config"
	"fitmanager/routine-service/internal/repository"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// newestFirst is the listing order shared by every collection. The _id tie-break keeps
// pages stable when several documents share a createdAt.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// ConnectDB establishes a connection to MongoDB and verifies it with a ping.
// Server selection and socket timeouts are the only store deadlines the service uses.
func ConnectDB(cfg config.DatabaseConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI)
	if cfg.ServerSelectionTimeout > 0 {
		clientOptions.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.SocketTimeout > 0 {
		clientOptions.SetSocketTimeout(cfg.SocketTimeout)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// The initial connect can succeed against an unresponsive server, so ping the primary.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// Ping is used by the health endpoint.
func Ping(ctx context.Context, client *mongo.Client) error {
	return storeErr(client.Ping(ctx, readpref.Primary()))
}

// storeErr maps driver failures onto repository errors. Timeouts and network errors
// become repository.ErrUnavailable; a missing document becomes repository.ErrNotFound.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return err
}

// EnsureIndexes creates the indexes of every collection the service owns.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	return errors.Join(
		EnsureExerciseIndexes(ctx, db.Collection(exerciseCollectionName)),
		EnsureRoutineIndexes(ctx, db.Collection(routineCollectionName)),
		EnsureWorkoutLogIndexes(ctx, db.Collection(workoutLogCollectionName)),
	)
}
