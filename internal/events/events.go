package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/domain"
)

// TopicTaskCreated is the topic for task-creation notifications.
// It is the only topic TaskHub publishes on.
const TopicTaskCreated = "task.created"

// TaskCreated is the payload published when a task is created: a
// snapshot of the materialized task at the moment of creation. It is
// ephemeral and never persisted.
type TaskCreated struct {
	// ID is a unique identifier for this event, independent of the task.
	ID uuid.UUID `json:"id"`

	// Task is the created task as returned to the mutation's caller.
	Task *domain.Task `json:"task"`

	// PublishedAt is the timestamp when the event was published.
	PublishedAt time.Time `json:"published_at"`
}

// NewTaskCreated builds a TaskCreated event for the given task.
func NewTaskCreated(task *domain.Task) TaskCreated {
	return TaskCreated{
		ID:          uuid.New(),
		Task:        task,
		PublishedAt: time.Now().UTC(),
	}
}

// OwnerID returns the owning user's ID, or uuid.Nil when the payload
// carries no task. A partially populated payload must never crash a
// live subscription, so absence is a value here, not an error.
func (e TaskCreated) OwnerID() uuid.UUID {
	if e.Task == nil {
		return uuid.Nil
	}
	return e.Task.UserID
}
