package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/api/shared"
)

func TestCreateTask(t *testing.T) {
	t.Run("valid request creates the task", func(t *testing.T) {
		a := newTestAPI(t)
		ann := a.createUser(t, "Ann", "ann@x.com")

		rec := a.do(t, http.MethodPost, "/api/tasks", CreateTaskRequest{UserID: ann.ID, Title: "write spec"})
		require.Equal(t, http.StatusCreated, rec.Code)

		task := decodeBody[TaskResponse](t, rec)
		assert.Equal(t, ann.ID, task.UserID)
		assert.Equal(t, "write spec", task.Title)
		assert.False(t, task.Done)
	})

	t.Run("unknown owner responds 404 and persists nothing", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/tasks", CreateTaskRequest{UserID: uuid.NewString(), Title: "orphan"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeBody[shared.ErrorResponse](t, rec).Error)

		list := a.do(t, http.MethodGet, "/api/tasks", nil)
		require.Equal(t, http.StatusOK, list.Code)
		assert.Empty(t, decodeBody[[]TaskResponse](t, list))
	})

	t.Run("missing title responds 400", func(t *testing.T) {
		a := newTestAPI(t)
		ann := a.createUser(t, "Ann", "ann@x.com")

		rec := a.do(t, http.MethodPost, "/api/tasks", CreateTaskRequest{UserID: ann.ID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed user id responds 400", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/tasks", CreateTaskRequest{UserID: "not-a-uuid", Title: "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTask(t *testing.T) {
	t.Run("created task is returned by id", func(t *testing.T) {
		a := newTestAPI(t)
		ann := a.createUser(t, "Ann", "ann@x.com")
		created := a.createTask(t, ann.ID, "write spec")

		rec := a.do(t, http.MethodGet, "/api/tasks/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created, decodeBody[TaskResponse](t, rec))
	})

	t.Run("unknown id responds 404", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/api/tasks/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", decodeBody[shared.ErrorResponse](t, rec).Error)
	})
}

func TestListTasks(t *testing.T) {
	a := newTestAPI(t)
	ann := a.createUser(t, "Ann", "ann@x.com")
	bo := a.createUser(t, "Bo", "bo@x.com")

	first := a.createTask(t, ann.ID, "first")
	second := a.createTask(t, bo.ID, "second")
	third := a.createTask(t, ann.ID, "third")

	t.Run("unfiltered list in creation order", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/tasks", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		tasks := decodeBody[[]TaskResponse](t, rec)
		require.Len(t, tasks, 3)
		assert.Equal(t, first.ID, tasks[0].ID)
		assert.Equal(t, second.ID, tasks[1].ID)
		assert.Equal(t, third.ID, tasks[2].ID)
	})

	t.Run("filtered by owner", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/tasks?user_id="+ann.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		tasks := decodeBody[[]TaskResponse](t, rec)
		require.Len(t, tasks, 2)
		assert.Equal(t, first.ID, tasks[0].ID)
		assert.Equal(t, third.ID, tasks[1].ID)
	})

	t.Run("malformed owner filter responds 400", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/tasks?user_id=nope", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestToggleTask(t *testing.T) {
	t.Run("flips done on each call", func(t *testing.T) {
		a := newTestAPI(t)
		ann := a.createUser(t, "Ann", "ann@x.com")
		task := a.createTask(t, ann.ID, "toggle me")

		rec := a.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/toggle", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeBody[TaskResponse](t, rec).Done)

		// Double toggle restores the original value.
		rec = a.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/toggle", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeBody[TaskResponse](t, rec).Done)
	})

	t.Run("unknown id responds 404", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/tasks/"+uuid.NewString()+"/toggle", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", decodeBody[shared.ErrorResponse](t, rec).Error)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("existing task reports deleted true, then absent", func(t *testing.T) {
		a := newTestAPI(t)
		ann := a.createUser(t, "Ann", "ann@x.com")
		task := a.createTask(t, ann.ID, "delete me")

		rec := a.do(t, http.MethodDelete, "/api/tasks/"+task.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeBody[DeleteTaskResponse](t, rec).Deleted)

		gone := a.do(t, http.MethodGet, "/api/tasks/"+task.ID, nil)
		assert.Equal(t, http.StatusNotFound, gone.Code)
	})

	t.Run("missing id reports deleted false with status 200", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodDelete, "/api/tasks/"+uuid.NewString(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeBody[DeleteTaskResponse](t, rec).Deleted)
	})
}
