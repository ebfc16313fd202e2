// Package memory provides in-process implementations of the store
// interfaces. They back the service and API tests, which must run
// without an external database, and keep the same ordering guarantees
// as the postgres stores (creation order on list reads).
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/domain"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/store"
)

// UserStore is an in-memory implementation of store.UserStore.
// Safe for concurrent use.
type UserStore struct {
	mu    sync.RWMutex
	users []*domain.User
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements store.UserStore.List. Users come back in creation order.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.users, func(u *domain.User, _ int) *domain.User {
		clone := *u
		return &clone
	}), nil
}

// TaskStore is an in-memory implementation of store.TaskStore.
// Safe for concurrent use.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []*domain.Task
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *task
	s.tasks = append(s.tasks, &clone)
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, task := range s.tasks {
		if task.ID == id {
			clone := *task
			return &clone, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// List implements store.TaskStore.List. Tasks come back in creation
// order, optionally restricted to one owner.
func (s *TaskStore) List(ctx context.Context, userID *uuid.UUID) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := s.tasks
	if userID != nil {
		matching = lo.Filter(s.tasks, func(task *domain.Task, _ int) bool {
			return task.UserID == *userID
		})
	}

	return lo.Map(matching, func(task *domain.Task, _ int) *domain.Task {
		clone := *task
		return &clone
	}), nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.ID == task.ID {
			clone := *task
			s.tasks[i] = &clone
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}
