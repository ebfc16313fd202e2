package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/api/shared"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid request creates the user", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/users", CreateUserRequest{Name: "Ann", Email: "ann@x.com"})
		require.Equal(t, http.StatusCreated, rec.Code)

		user := decodeBody[UserResponse](t, rec)
		assert.Equal(t, "Ann", user.Name)
		assert.Equal(t, "ann@x.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())

		// The wire id must be a stable string form of a UUID.
		_, err := uuid.Parse(user.ID)
		assert.NoError(t, err)
	})

	t.Run("duplicate email responds 409", func(t *testing.T) {
		a := newTestAPI(t)
		a.createUser(t, "Ann", "ann@x.com")

		rec := a.do(t, http.MethodPost, "/api/users", CreateUserRequest{Name: "Other Ann", Email: "ann@x.com"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email already exists", decodeBody[shared.ErrorResponse](t, rec).Error)
	})

	t.Run("missing fields respond 400", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/users", CreateUserRequest{Name: "Ann"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed email responds 400", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/users", CreateUserRequest{Name: "Ann", Email: "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid JSON responds 400", func(t *testing.T) {
		a := newTestAPI(t)

		req := a.do(t, http.MethodPost, "/api/users", "{not json")
		assert.Equal(t, http.StatusBadRequest, req.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("created user is returned by id", func(t *testing.T) {
		a := newTestAPI(t)
		created := a.createUser(t, "Ann", "ann@x.com")

		rec := a.do(t, http.MethodGet, "/api/users/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decodeBody[UserResponse](t, rec)
		assert.Equal(t, created, got)
	})

	t.Run("unknown id responds 404", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/api/users/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeBody[shared.ErrorResponse](t, rec).Error)
	})

	t.Run("malformed id responds 400", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/api/users/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("empty store lists an empty array", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/api/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody[[]UserResponse](t, rec))
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("lists users in creation order", func(t *testing.T) {
		a := newTestAPI(t)
		ann := a.createUser(t, "Ann", "ann@x.com")
		bo := a.createUser(t, "Bo", "bo@x.com")

		rec := a.do(t, http.MethodGet, "/api/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		users := decodeBody[[]UserResponse](t, rec)
		require.Len(t, users, 2)
		assert.Equal(t, ann.ID, users[0].ID)
		assert.Equal(t, bo.ID, users[1].ID)
	})
}
