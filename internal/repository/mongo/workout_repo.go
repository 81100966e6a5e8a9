// internal/repository/mongo/workout_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "treinos"

// lookupExercises is a left outer join of each workout's exercise ids
// against the exercise collection, evaluated at read time.
var lookupExercises = bson.D{{Key: "$lookup", Value: bson.D{
	{Key: "from", Value: exerciseCollectionName},
	{Key: "localField", Value: "exercises"},
	{Key: "foreignField", Value: "_id"},
	{Key: "as", Value: "exerciseDetails"},
}}}

// workoutDocument is the shape produced by the lookup pipeline.
type workoutDocument struct {
	domain.Workout  `bson:",inline"`
	ExerciseDetails []bson.M `bson:"exerciseDetails"`
}

func (d workoutDocument) toDomain() domain.WorkoutWithExercises {
	details := make([]domain.Exercise, 0, len(d.ExerciseDetails))
	for _, doc := range d.ExerciseDetails {
		details = append(details, exerciseFromDocument(doc))
	}
	w := d.Workout
	if w.Exercises == nil {
		w.Exercises = []primitive.ObjectID{}
	}
	return domain.WorkoutWithExercises{Workout: w, ExerciseDetails: details}
}

// storedTime rounds t down to the millisecond precision of BSON dates so
// the value handed back on write equals what a later read returns.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout. A zero Date is replaced by the current time.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	if workout.Date.IsZero() {
		workout.Date = time.Now().UTC()
	}
	workout.Date = storedTime(workout.Date)
	if workout.Exercises == nil {
		workout.Exercises = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout with its exercise details.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutWithExercises, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		lookupExercises,
	}
	workouts, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, repository.ErrNotFound
	}
	return &workouts[0], nil
}

// List returns every workout, in database order, with its exercise details.
func (r *mongoWorkoutRepository) List(ctx context.Context) ([]domain.WorkoutWithExercises, error) {
	return r.aggregate(ctx, mongo.Pipeline{lookupExercises})
}

func (r *mongoWorkoutRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]domain.WorkoutWithExercises, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []workoutDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	workouts := make([]domain.WorkoutWithExercises, 0, len(docs))
	for _, doc := range docs {
		workouts = append(workouts, doc.toDomain())
	}
	return workouts, nil
}

// Update overwrites the non-nil fields of changes and returns the workout
// after the update.
func (r *mongoWorkoutRepository) Update(ctx context.Context, id primitive.ObjectID, changes domain.WorkoutChanges) (*domain.Workout, error) {
	set := bson.M{}
	if changes.Name != nil {
		set["name"] = *changes.Name
	}
	if changes.Description != nil {
		set["description"] = *changes.Description
	}
	if changes.Date != nil {
		set["date"] = storedTime(*changes.Date)
	}
	if changes.Exercises != nil {
		exercises := *changes.Exercises
		if exercises == nil {
			exercises = []primitive.ObjectID{}
		}
		set["exercises"] = exercises
	}

	var workout domain.Workout
	var err error
	if len(set) == 0 {
		err = r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&workout)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if workout.Exercises == nil {
		workout.Exercises = []primitive.ObjectID{}
	}
	return &workout, nil
}

// Delete removes a workout by id.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
