package service

import (
	"context"
	"errors"

	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/repository"
	"fitbuddy/backend/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("connection reset")

// attributeStore is an in-memory document store shared by the exercise and
// user stubs.
type attributeStore struct {
	docs  map[primitive.ObjectID]domain.Attributes
	order []primitive.ObjectID
	err   error
}

func newAttributeStore() *attributeStore {
	return &attributeStore{docs: map[primitive.ObjectID]domain.Attributes{}}
}

func (s *attributeStore) insert(attrs domain.Attributes) (primitive.ObjectID, error) {
	if s.err != nil {
		return primitive.NilObjectID, s.err
	}
	id := primitive.NewObjectID()
	copied := domain.Attributes{}
	for k, v := range attrs {
		copied[k] = v
	}
	s.docs[id] = copied
	s.order = append(s.order, id)
	return id, nil
}

func (s *attributeStore) get(id primitive.ObjectID) (domain.Attributes, error) {
	if s.err != nil {
		return nil, s.err
	}
	attrs, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return attrs, nil
}

func (s *attributeStore) merge(id primitive.ObjectID, set domain.Attributes) (domain.Attributes, error) {
	attrs, err := s.get(id)
	if err != nil {
		return nil, err
	}
	for k, v := range set {
		attrs[k] = v
	}
	return attrs, nil
}

func (s *attributeStore) remove(id primitive.ObjectID) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.docs, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type stubExerciseRepo struct{ *attributeStore }

func (r stubExerciseRepo) Create(_ context.Context, e *domain.Exercise) (primitive.ObjectID, error) {
	id, err := r.insert(e.Attributes)
	if err == nil {
		e.ID = id
	}
	return id, err
}

func (r stubExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	attrs, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return &domain.Exercise{ID: id, Attributes: attrs}, nil
}

func (r stubExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Exercise
	for _, id := range r.order {
		out = append(out, domain.Exercise{ID: id, Attributes: r.docs[id]})
	}
	return out, nil
}

func (r stubExerciseRepo) Update(_ context.Context, id primitive.ObjectID, set domain.Attributes) (*domain.Exercise, error) {
	attrs, err := r.merge(id, set)
	if err != nil {
		return nil, err
	}
	return &domain.Exercise{ID: id, Attributes: attrs}, nil
}

func (r stubExerciseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.remove(id)
}

type stubUserRepo struct{ *attributeStore }

func userFrom(id primitive.ObjectID, attrs domain.Attributes) *domain.User {
	u := &domain.User{ID: id, Attributes: domain.Attributes{}}
	for k, v := range attrs {
		if k == domain.ImageProfileKey {
			if s, ok := v.(string); ok {
				u.ImageProfile = &s
			}
			continue
		}
		u.Attributes[k] = v
	}
	return u
}

func (r stubUserRepo) Create(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
	attrs := domain.Attributes{}
	for k, v := range u.Attributes {
		attrs[k] = v
	}
	if u.ImageProfile != nil {
		attrs[domain.ImageProfileKey] = *u.ImageProfile
	}
	id, err := r.insert(attrs)
	if err == nil {
		u.ID = id
	}
	return id, err
}

func (r stubUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	attrs, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return userFrom(id, attrs), nil
}

func (r stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.User
	for _, id := range r.order {
		out = append(out, *userFrom(id, r.docs[id]))
	}
	return out, nil
}

func (r stubUserRepo) Update(_ context.Context, id primitive.ObjectID, set domain.Attributes) (*domain.User, error) {
	attrs, err := r.merge(id, set)
	if err != nil {
		return nil, err
	}
	return userFrom(id, attrs), nil
}

func (r stubUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.remove(id)
}

type stubWorkoutRepo struct {
	workouts  map[primitive.ObjectID]domain.Workout
	exercises map[primitive.ObjectID]domain.Exercise
	order     []primitive.ObjectID
	err       error
	// last holds the changes passed to the most recent Update.
	last domain.WorkoutChanges
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{
		workouts:  map[primitive.ObjectID]domain.Workout{},
		exercises: map[primitive.ObjectID]domain.Exercise{},
	}
}

func (r *stubWorkoutRepo) join(w domain.Workout) domain.WorkoutWithExercises {
	joined := domain.WorkoutWithExercises{Workout: w, ExerciseDetails: []domain.Exercise{}}
	for _, id := range w.Exercises {
		if e, ok := r.exercises[id]; ok {
			joined.ExerciseDetails = append(joined.ExerciseDetails, e)
		}
	}
	return joined
}

func (r *stubWorkoutRepo) Create(_ context.Context, w *domain.Workout) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	w.ID = primitive.NewObjectID()
	if w.Exercises == nil {
		w.Exercises = []primitive.ObjectID{}
	}
	r.workouts[w.ID] = *w
	r.order = append(r.order, w.ID)
	return w.ID, nil
}

func (r *stubWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutWithExercises, error) {
	if r.err != nil {
		return nil, r.err
	}
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	joined := r.join(w)
	return &joined, nil
}

func (r *stubWorkoutRepo) List(_ context.Context) ([]domain.WorkoutWithExercises, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.WorkoutWithExercises
	for _, id := range r.order {
		out = append(out, r.join(r.workouts[id]))
	}
	return out, nil
}

func (r *stubWorkoutRepo) Update(_ context.Context, id primitive.ObjectID, c domain.WorkoutChanges) (*domain.Workout, error) {
	r.last = c
	if r.err != nil {
		return nil, r.err
	}
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if c.Name != nil {
		w.Name = *c.Name
	}
	if c.Description != nil {
		w.Description = *c.Description
	}
	if c.Date != nil {
		w.Date = *c.Date
	}
	if c.Exercises != nil {
		w.Exercises = *c.Exercises
	}
	r.workouts[id] = w
	return &w, nil
}

func (r *stubWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type stubMedia struct {
	deleted   []string
	deleteErr error
}

func (m *stubMedia) Upload(_ context.Context, _ string) (*storage.UploadedObject, error) {
	return nil, errors.New("not used")
}

func (m *stubMedia) DeleteObject(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return m.deleteErr
}
