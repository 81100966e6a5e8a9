package service

import (
	"context"
	"time"

	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/repository"
	"fitbuddy/backend/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const workoutNotFound = "Treino not found"

// WorkoutInput is a complete workout payload, used on create and full update.
type WorkoutInput struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Date        *time.Time `json:"date"`
	Exercises   []string   `json:"exercises" validate:"dive,mongodb"`
}

// WorkoutPatch carries only the fields a partial update changes.
type WorkoutPatch struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Description *string    `json:"description" validate:"omitempty,min=1"`
	Date        *time.Time `json:"date"`
	Exercises   *[]string  `json:"exercises" validate:"omitempty,dive,mongodb"`
}

// WorkoutService manages workouts ("treinos").
type WorkoutService interface {
	CreateWorkout(ctx context.Context, in WorkoutInput) (*domain.Workout, error)
	GetWorkout(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutWithExercises, error)
	ListWorkouts(ctx context.Context) ([]domain.WorkoutWithExercises, error)
	// ReplaceWorkout overwrites every field of in. An omitted date keeps the stored one.
	ReplaceWorkout(ctx context.Context, id primitive.ObjectID, in WorkoutInput) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, id primitive.ObjectID, patch WorkoutPatch) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id primitive.ObjectID) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

// CreateWorkout stores a new workout. Referenced exercises are not looked up.
func (s *workoutService) CreateWorkout(ctx context.Context, in WorkoutInput) (*domain.Workout, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	exercises, err := parseObjectIDs("exercises", in.Exercises)
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		Name:        in.Name,
		Description: in.Description,
		Exercises:   exercises,
	}
	if in.Date != nil {
		workout.Date = in.Date.UTC().Truncate(time.Millisecond)
	}

	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, classify(err, workoutNotFound, "failed to create workout")
	}
	return workout, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutWithExercises, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err, workoutNotFound, "failed to fetch workout")
	}
	return workout, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.WorkoutWithExercises, error) {
	workouts, err := s.workoutRepo.List(ctx)
	if err != nil {
		return nil, classify(err, workoutNotFound, "failed to list workouts")
	}
	if workouts == nil {
		workouts = []domain.WorkoutWithExercises{}
	}
	return workouts, nil
}

func (s *workoutService) ReplaceWorkout(ctx context.Context, id primitive.ObjectID, in WorkoutInput) (*domain.Workout, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	exercises, err := parseObjectIDs("exercises", in.Exercises)
	if err != nil {
		return nil, err
	}

	changes := domain.WorkoutChanges{
		Name:        &in.Name,
		Description: &in.Description,
		Date:        in.Date,
		Exercises:   &exercises,
	}
	return s.update(ctx, id, changes)
}

func (s *workoutService) UpdateWorkout(ctx context.Context, id primitive.ObjectID, patch WorkoutPatch) (*domain.Workout, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	changes := domain.WorkoutChanges{
		Name:        patch.Name,
		Description: patch.Description,
		Date:        patch.Date,
	}
	if patch.Exercises != nil {
		exercises, err := parseObjectIDs("exercises", *patch.Exercises)
		if err != nil {
			return nil, err
		}
		changes.Exercises = &exercises
	}
	return s.update(ctx, id, changes)
}

func (s *workoutService) update(ctx context.Context, id primitive.ObjectID, changes domain.WorkoutChanges) (*domain.Workout, error) {
	workout, err := s.workoutRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, classify(err, workoutNotFound, "failed to update workout")
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id primitive.ObjectID) error {
	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		return classify(err, workoutNotFound, "failed to delete workout")
	}
	return nil
}
