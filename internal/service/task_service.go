package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/domain"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/events"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/store"
)

// Publisher is the slice of the event bus the task service needs.
type Publisher interface {
	Publish(topic string, evt events.TaskCreated)
}

// TaskService provides task-related operations.
type TaskService interface {
	// Create persists a new task owned by userID and publishes a
	// task-created event to live subscribers. Returns
	// store.ErrUserNotFound when the owner does not exist; no task is
	// persisted and no event is published in that case.
	Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Task, error)

	// Get retrieves a task by ID.
	// Returns store.ErrTaskNotFound when the task does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns tasks in creation order, optionally restricted to
	// one owner.
	List(ctx context.Context, userID *uuid.UUID) ([]*domain.Task, error)

	// Toggle flips a task's done flag and returns the updated task.
	// Returns store.ErrTaskNotFound when the task does not exist.
	Toggle(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Delete removes a task by ID and reports whether anything was
	// removed. A missing id yields (false, nil), never an error; callers
	// rely on this for idempotent deletes.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	userStore store.UserStore
	publisher Publisher
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any required dependency is nil.
func NewTaskService(
	taskStore store.TaskStore,
	userStore store.UserStore,
	publisher Publisher,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if publisher == nil {
		return nil, fmt.Errorf("publisher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		userStore: userStore,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// Create implements TaskService.Create.
// The event is published after the write succeeds; delivery to
// subscribers is asynchronous and does not delay the response.
func (s *taskServiceImpl) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Task, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(userID, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	s.publisher.Publish(events.TopicTaskCreated, events.NewTaskCreated(task))

	s.logger.Info("task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// Get implements TaskService.Get.
func (s *taskServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context, userID *uuid.UUID) ([]*domain.Task, error) {
	return s.taskStore.List(ctx, userID)
}

// Toggle implements TaskService.Toggle.
// The flip is a read-modify-write; two concurrent toggles on the same
// id may race, which the persistence gateway does not guard against.
func (s *taskServiceImpl) Toggle(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Done = !task.Done
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to toggle task",
			"error", err,
			"task_id", id)
		return nil, err
	}

	return task, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	err := s.taskStore.Delete(ctx, id)
	if errors.Is(err, store.ErrTaskNotFound) {
		return false, nil
	}
	if err != nil {
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", id)
		return false, err
	}

	return true, nil
}
