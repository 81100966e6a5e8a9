package repository

import (
	"context"

	"fitbuddy/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository stores free-form exercise documents.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	// Update merges set into the document and returns it after the merge.
	Update(ctx context.Context, id primitive.ObjectID, set domain.Attributes) (*domain.Exercise, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutRepository stores workouts; reads join their exercise references.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutWithExercises, error)
	List(ctx context.Context) ([]domain.WorkoutWithExercises, error)
	Update(ctx context.Context, id primitive.ObjectID, changes domain.WorkoutChanges) (*domain.Workout, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository stores free-form user documents.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, set domain.Attributes) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
