// internal/domain/exercise.go
package domain

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MuscleGroup is one of the body areas an exercise trains.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleLegs      MuscleGroup = "legs"
	MuscleCore      MuscleGroup = "core"
	MuscleCardio    MuscleGroup = "cardio"
)

// Equipment is shared by exercises and routines.
type Equipment string

const (
	EquipmentBodyweight     Equipment = "bodyweight"
	EquipmentDumbbells      Equipment = "dumbbells"
	EquipmentBarbell        Equipment = "barbell"
	EquipmentMachine        Equipment = "machine"
	EquipmentCable          Equipment = "cable"
	EquipmentResistanceBand Equipment = "resistance_band"
	EquipmentKettlebell     Equipment = "kettlebell"
)

// Difficulty is shared by exercises and routines.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a catalog entry. The catalog is global: exercises have no owner and
// are referenced (never embedded) by routines and workout logs.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	MuscleGroups []MuscleGroup      `bson:"muscleGroups" json:"muscleGroups"`
	Equipment    []Equipment        `bson:"equipment" json:"equipment"`
	Difficulty   Difficulty         `bson:"difficulty" json:"difficulty"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	Tips         []string           `bson:"tips" json:"tips"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL     string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CountBucket is one row of a group-by aggregation. The key is serialized as "_id"
// to match the shape the dashboard reads.
type CountBucket struct {
	Key   string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

// BucketsFromCounts orders counts by count descending, then key ascending.
func BucketsFromCounts(counts map[string]int64) []CountBucket {
	buckets := make([]CountBucket, 0, len(counts))
	for key, n := range counts {
		buckets = append(buckets, CountBucket{Key: key, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// RecentExercise is the projection used by the catalog stats.
type RecentExercise struct {
	Name         string        `bson:"name" json:"name"`
	Difficulty   Difficulty    `bson:"difficulty" json:"difficulty"`
	MuscleGroups []MuscleGroup `bson:"muscleGroups" json:"muscleGroups"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// ExerciseStats aggregates the catalog.
type ExerciseStats struct {
	Total         int64
	ByMuscleGroup []CountBucket
	ByDifficulty  []CountBucket
	ByEquipment   []CountBucket
	Recent        []RecentExercise
}
