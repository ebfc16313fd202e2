package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/events"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/platform/memory"
	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/service"
)

// testAPI wires handlers over in-memory stores and a live bus, the same
// dependency graph cmd/server builds at startup.
type testAPI struct {
	router http.Handler
	users  service.UserService
	tasks  service.TaskService
	bus    *events.Bus
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userStore := memory.NewUserStore()
	taskStore := memory.NewTaskStore()
	bus := events.NewBus(logger)
	t.Cleanup(bus.Close)

	userService, err := service.NewUserService(userStore, logger)
	require.NoError(t, err)
	taskService, err := service.NewTaskService(taskStore, userStore, bus, logger)
	require.NoError(t, err)

	userHandler := NewUserHandler(userService, logger)
	taskHandler := NewTaskHandler(taskService, logger)
	streamHandler := NewStreamHandler(bus, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/users", userHandler.ListUsers)
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users/{id}", userHandler.GetUser)

		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks/events", streamHandler.TaskCreated)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Post("/tasks/{id}/toggle", taskHandler.ToggleTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
	})

	return &testAPI{router: r, users: userService, tasks: taskService, bus: bus}
}

// do performs a request against the in-process router and returns the
// recorded response.
func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (a *testAPI) createUser(t *testing.T, name, email string) UserResponse {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/users", CreateUserRequest{Name: name, Email: email})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return decodeBody[UserResponse](t, rec)
}

func (a *testAPI) createTask(t *testing.T, userID, title string) TaskResponse {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/tasks", CreateTaskRequest{UserID: userID, Title: title})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return decodeBody[TaskResponse](t, rec)
}
