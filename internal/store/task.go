package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns tasks ordered by creation time. When userID is non-nil
	// the result is restricted to tasks owned by that user.
	List(ctx context.Context, userID *uuid.UUID) ([]*domain.Task, error)

	// Update persists the mutable fields of an existing task (done flag
	// and update timestamp). Returns ErrTaskNotFound if the task does
	// not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist; callers that
	// need idempotent delete semantics translate that sentinel themselves.
	Delete(ctx context.Context, id uuid.UUID) error
}
