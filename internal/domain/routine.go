// internal/domain/routine.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category classifies a routine by training goal.
type Category string

const (
	CategoryStrength       Category = "strength"
	CategoryCardio         Category = "cardio"
	CategoryFlexibility    Category = "flexibility"
	CategorySports         Category = "sports"
	CategoryRehabilitation Category = "rehabilitation"
	CategoryWeightLoss     Category = "weight_loss"
	CategoryMuscleGain     Category = "muscle_gain"
)

// Defaults applied when a routine payload omits the field.
const (
	DefaultRoutineDifficulty  = DifficultyBeginner
	DefaultRoutineCategory    = CategoryStrength
	DefaultEstimatedDuration  = 30
	DefaultExerciseDifficulty = DifficultyBeginner
)

// Set is one prescribed or performed set. Every numeric field is optional: a timed
// exercise carries Duration, a rep-based one carries Reps/Weight.
type Set struct {
	Reps      *float64 `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight    *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Duration  *float64 `bson:"duration,omitempty" json:"duration,omitempty"` // seconds
	Rest      *float64 `bson:"rest,omitempty" json:"rest,omitempty"`         // seconds
	Completed bool     `bson:"completed" json:"completed"`
}

// WorkoutExercise is one exercise prescription inside a routine.
type WorkoutExercise struct {
	ExerciseID primitive.ObjectID `bson:"exercise" json:"exerciseId"`
	Sets       []Set              `bson:"sets" json:"sets"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Order      int                `bson:"order" json:"order"`
}

// Routine is a user-owned, ordered workout plan.
type Routine struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	OwnerID           string             `bson:"userId" json:"userId"`
	Exercises         []WorkoutExercise  `bson:"exercises" json:"exercises"`
	Tags              []string           `bson:"tags" json:"tags"`
	Difficulty        Difficulty         `bson:"difficulty" json:"difficulty"`
	EstimatedDuration int                `bson:"estimatedDuration" json:"estimatedDuration"` // minutes
	IsPublic          bool               `bson:"isPublic" json:"isPublic"`
	Category          Category           `bson:"category" json:"category"`
	Equipment         []Equipment        `bson:"equipment" json:"equipment"`
	IsActive          bool               `bson:"isActive" json:"isActive"` // list visibility, not lifecycle
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VisibleTo reports whether callerID may read the routine.
func (r *Routine) VisibleTo(callerID string) bool {
	return r.OwnerID == callerID || r.IsPublic
}

// DurationBucket names the length class of a routine.
type DurationBucket string

const (
	DurationShort  DurationBucket = "short"  // <= 30 min
	DurationMedium DurationBucket = "medium" // 31-60 min
	DurationLong   DurationBucket = "long"   // > 60 min
)

// BucketForDuration classifies an estimated duration in minutes.
func BucketForDuration(minutes int) DurationBucket {
	switch {
	case minutes <= 30:
		return DurationShort
	case minutes <= 60:
		return DurationMedium
	default:
		return DurationLong
	}
}
