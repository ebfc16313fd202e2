package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/PabloGonzalez12/mini-proyecto-taskhub-graphql/internal/store"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"})) // FK violation
	assert.False(t, isUniqueViolation(errors.New("not a pg error")))
}

func TestMapNoRows(t *testing.T) {
	t.Parallel()

	err := mapNoRows(sql.ErrNoRows, store.ErrTaskNotFound)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	wrapped := mapNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows), store.ErrUserNotFound)
	assert.ErrorIs(t, wrapped, store.ErrUserNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapNoRows(other, store.ErrTaskNotFound))
}
