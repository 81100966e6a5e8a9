package service

import (
	"context"

	"fitbuddy/backend/internal/domain"
	"fitbuddy/backend/internal/errs"
	"fitbuddy/backend/internal/repository"
	"fitbuddy/backend/internal/storage"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userNotFound = "User not found"

// UserService manages users and their profile images.
type UserService interface {
	// CreateUser stores a user whose profile image, if any, is already on the
	// media host. If the user cannot be stored the image is deleted again.
	CreateUser(ctx context.Context, attrs domain.Attributes, image *storage.UploadedObject) (*domain.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, attrs domain.Attributes) (*domain.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

type userService struct {
	userRepo repository.UserRepository
	media    storage.MediaHost
	log      zerolog.Logger
}

func NewUserService(userRepo repository.UserRepository, media storage.MediaHost, log zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		media:    media,
		log:      log,
	}
}

func (s *userService) CreateUser(ctx context.Context, attrs domain.Attributes, image *storage.UploadedObject) (*domain.User, error) {
	clean, err := cleanAttributes(attrs)
	if err != nil {
		s.discard(ctx, image)
		return nil, err
	}
	delete(clean, domain.ImageProfileKey)

	user := &domain.User{Attributes: clean}
	if image != nil {
		url := image.URL
		user.ImageProfile = &url
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		s.discard(ctx, image)
		return nil, classify(err, userNotFound, "failed to create user")
	}
	return user, nil
}

// discard removes an uploaded image that no user will reference.
func (s *userService) discard(ctx context.Context, image *storage.UploadedObject) {
	if image == nil || s.media == nil {
		return
	}
	if err := s.media.DeleteObject(context.WithoutCancel(ctx), image.Key); err != nil {
		s.log.Warn().Err(err).Str("key", image.Key).Msg("orphaned profile image left on media host")
	}
}

func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err, userNotFound, "failed to fetch user")
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, classify(err, userNotFound, "failed to list users")
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// UpdateUser merges attrs into the user. imageProfile may be set to a URL
// string or cleared with null.
func (s *userService) UpdateUser(ctx context.Context, id primitive.ObjectID, attrs domain.Attributes) (*domain.User, error) {
	clean, err := cleanAttributes(attrs)
	if err != nil {
		return nil, err
	}
	if v, ok := clean[domain.ImageProfileKey]; ok && v != nil {
		if _, isString := v.(string); !isString {
			return nil, errs.Validation("Validation failed", errs.FieldError{
				Field: domain.ImageProfileKey,
				Error: "must be a URL string or null",
			})
		}
	}

	user, err := s.userRepo.Update(ctx, id, clean)
	if err != nil {
		return nil, classify(err, userNotFound, "failed to update user")
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return classify(err, userNotFound, "failed to delete user")
	}
	return nil
}
