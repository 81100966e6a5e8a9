package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/errs"
	"fitbuddy/backend/internal/service"
	"fitbuddy/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubExerciseService struct {
	exercise  *domain.Exercise
	exercises []domain.Exercise
	err       error
	lastID    primitive.ObjectID
	lastAttrs domain.Attributes
}

func (s *stubExerciseService) CreateExercise(_ context.Context, attrs domain.Attributes) (*domain.Exercise, error) {
	s.lastAttrs = attrs
	return s.exercise, s.err
}

func (s *stubExerciseService) GetExercise(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	s.lastID = id
	return s.exercise, s.err
}

func (s *stubExerciseService) ListExercises(_ context.Context) ([]domain.Exercise, error) {
	return s.exercises, s.err
}

func (s *stubExerciseService) UpdateExercise(_ context.Context, id primitive.ObjectID, attrs domain.Attributes) (*domain.Exercise, error) {
	s.lastID = id
	s.lastAttrs = attrs
	return s.exercise, s.err
}

func (s *stubExerciseService) DeleteExercise(_ context.Context, id primitive.ObjectID) error {
	s.lastID = id
	return s.err
}

type stubWorkoutService struct {
	workout   *domain.Workout
	joined    *domain.WorkoutWithExercises
	workouts  []domain.WorkoutWithExercises
	err       error
	lastID    primitive.ObjectID
	lastInput service.WorkoutInput
	lastPatch service.WorkoutPatch
	replaced  bool
}

func (s *stubWorkoutService) CreateWorkout(_ context.Context, in service.WorkoutInput) (*domain.Workout, error) {
	s.lastInput = in
	return s.workout, s.err
}

func (s *stubWorkoutService) GetWorkout(_ context.Context, id primitive.ObjectID) (*domain.WorkoutWithExercises, error) {
	s.lastID = id
	return s.joined, s.err
}

func (s *stubWorkoutService) ListWorkouts(_ context.Context) ([]domain.WorkoutWithExercises, error) {
	return s.workouts, s.err
}

func (s *stubWorkoutService) ReplaceWorkout(_ context.Context, id primitive.ObjectID, in service.WorkoutInput) (*domain.Workout, error) {
	s.lastID = id
	s.lastInput = in
	s.replaced = true
	return s.workout, s.err
}

func (s *stubWorkoutService) UpdateWorkout(_ context.Context, id primitive.ObjectID, patch service.WorkoutPatch) (*domain.Workout, error) {
	s.lastID = id
	s.lastPatch = patch
	return s.workout, s.err
}

func (s *stubWorkoutService) DeleteWorkout(_ context.Context, id primitive.ObjectID) error {
	s.lastID = id
	return s.err
}

type stubUserService struct {
	user      *domain.User
	users     []domain.User
	err       error
	calls     int
	lastID    primitive.ObjectID
	lastAttrs domain.Attributes
	lastImage *storage.UploadedObject
}

func (s *stubUserService) CreateUser(_ context.Context, attrs domain.Attributes, image *storage.UploadedObject) (*domain.User, error) {
	s.calls++
	s.lastAttrs = attrs
	s.lastImage = image
	return s.user, s.err
}

func (s *stubUserService) GetUser(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	s.lastID = id
	return s.user, s.err
}

func (s *stubUserService) ListUsers(_ context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) UpdateUser(_ context.Context, id primitive.ObjectID, attrs domain.Attributes) (*domain.User, error) {
	s.calls++
	s.lastID = id
	s.lastAttrs = attrs
	return s.user, s.err
}

func (s *stubUserService) DeleteUser(_ context.Context, id primitive.ObjectID) error {
	s.lastID = id
	return s.err
}

// stubMedia records the staged path it was given and whether the file
// existed at upload time.
type stubMedia struct {
	object      *storage.UploadedObject
	err         error
	stagedPath  string
	stagedBytes []byte
}

func (m *stubMedia) Upload(_ context.Context, localPath string) (*storage.UploadedObject, error) {
	m.stagedPath = localPath
	m.stagedBytes, _ = os.ReadFile(localPath)
	return m.object, m.err
}

func (m *stubMedia) DeleteObject(_ context.Context, _ string) error {
	return nil
}

type testServer struct {
	router    *gin.Engine
	exercises *stubExerciseService
	workouts  *stubWorkoutService
	users     *stubUserService
	media     *stubMedia
	staging   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		router:    gin.New(),
		exercises: &stubExerciseService{},
		workouts:  &stubWorkoutService{},
		users:     &stubUserService{},
		media:     &stubMedia{},
		staging:   t.TempDir(),
	}
	ts.router.Use(RequestLogger(zerolog.Nop()))
	SetupRoutes(ts.router, Services{
		Exercises:  ts.exercises,
		Workouts:   ts.workouts,
		Users:      ts.users,
		Media:      ts.media,
		StagingDir: ts.staging,
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var errDatabase = errs.Wrap(errs.Internal, "failed to list", errors.New("socket closed"))

func mustID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
