package service

import (
	"context"

	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const exerciseNotFound = "Exercise not found"

// ExerciseService manages the free-form exercise library.
type ExerciseService interface {
	CreateExercise(ctx context.Context, attrs domain.Attributes) (*domain.Exercise, error)
	GetExercise(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	// UpdateExercise merges attrs into the exercise; other attributes are kept.
	UpdateExercise(ctx context.Context, id primitive.ObjectID, attrs domain.Attributes) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id primitive.ObjectID) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

func (s *exerciseService) CreateExercise(ctx context.Context, attrs domain.Attributes) (*domain.Exercise, error) {
	clean, err := cleanAttributes(attrs)
	if err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{Attributes: clean}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, classify(err, exerciseNotFound, "failed to create exercise")
	}
	return exercise, nil
}

func (s *exerciseService) GetExercise(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err, exerciseNotFound, "failed to fetch exercise")
	}
	return exercise, nil
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, classify(err, exerciseNotFound, "failed to list exercises")
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, nil
}

func (s *exerciseService) UpdateExercise(ctx context.Context, id primitive.ObjectID, attrs domain.Attributes) (*domain.Exercise, error) {
	clean, err := cleanAttributes(attrs)
	if err != nil {
		return nil, err
	}

	exercise, err := s.exerciseRepo.Update(ctx, id, clean)
	if err != nil {
		return nil, classify(err, exerciseNotFound, "failed to update exercise")
	}
	return exercise, nil
}

// DeleteExercise removes the exercise only. Workouts that reference it keep
// the dangling id; it simply stops resolving in exerciseDetails.
func (s *exerciseService) DeleteExercise(ctx context.Context, id primitive.ObjectID) error {
	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		return classify(err, exerciseNotFound, "failed to delete exercise")
	}
	return nil
}
