// internal/domain/workout_log.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggedExercise is the performed copy of one exercise. It is written once with the
// log and never re-derived from the routine.
type LoggedExercise struct {
	ExerciseID primitive.ObjectID `bson:"exercise" json:"exerciseId"`
	Sets       []Set              `bson:"sets" json:"sets"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutLog records one performed session of a routine.
type WorkoutLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   string             `bson:"userId" json:"userId"`
	RoutineID primitive.ObjectID `bson:"routine" json:"routineId"`
	Exercises []LoggedExercise   `bson:"exercises" json:"exercises"`
	StartTime time.Time          `bson:"startTime" json:"startTime"`
	EndTime   *time.Time         `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Duration  *float64           `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating    *int               `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
