// Package service provides application-level services for managing
// users and tasks. Services compose the persistence gateway and the
// event bus; handlers never touch either directly.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/domain"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/store"
)

// UserService provides user-related operations.
type UserService interface {
	// Create registers a new user.
	// Returns store.ErrEmailExists when the email is already taken and
	// domain validation errors for malformed input.
	Create(ctx context.Context, name, email string) (*domain.User, error)

	// Get retrieves a user by ID.
	// Returns store.ErrUserNotFound when the user does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List returns all users in creation order.
	List(ctx context.Context) ([]*domain.User, error)
}

type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if the user store is nil.
func NewUserService(userStore store.UserStore, logger *slog.Logger) (UserService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// Create implements UserService.Create.
func (s *userServiceImpl) Create(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := domain.NewUser(name, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user",
			"error", err,
			"email", email)
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// Get implements UserService.Get.
func (s *userServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// List implements UserService.List.
func (s *userServiceImpl) List(ctx context.Context) ([]*domain.User, error) {
	return s.userStore.List(ctx)
}
