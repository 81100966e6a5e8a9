package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout ("treino") is a named session referencing exercises by id.
// The references are not checked against the exercise collection.
type Workout struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Date        time.Time            `bson:"date" json:"date"` // Defaults to creation time
	Exercises   []primitive.ObjectID `bson:"exercises" json:"exercises"`
}

// WorkoutWithExercises is a Workout joined at read time with the exercises
// its ids resolve to. Ids that match nothing have no entry.
type WorkoutWithExercises struct {
	Workout         `bson:",inline"`
	ExerciseDetails []Exercise `bson:"-" json:"exerciseDetails"`
}

// WorkoutChanges lists the fields to overwrite on an existing workout.
// Nil fields are left untouched.
type WorkoutChanges struct {
	Name        *string
	Description *string
	Date        *time.Time
	Exercises   *[]primitive.ObjectID
}

// IsEmpty reports whether no field would change.
func (c WorkoutChanges) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Date == nil && c.Exercises == nil
}
