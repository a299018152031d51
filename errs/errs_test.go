package errs

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		target error
	}{
		{"translated duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, ErrUniqueConstraintViolation},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_projects_slug"`), http.StatusConflict, ErrUniqueConstraintViolation},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: projects.slug"), http.StatusConflict, ErrUniqueConstraintViolation},
		{"missing row", gorm.ErrRecordNotFound, http.StatusNotFound, ErrNotFound},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, ErrDatabaseTimeout},
		{"bad conn", driver.ErrBadConn, http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"refused", errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "project", tt.cause)

			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestUniqueViolationField(t *testing.T) {
	err := NewDatabaseError("create", "project", errors.New("UNIQUE constraint failed: projects.slug"))

	assert.True(t, IsUniqueConstraintViolationError(err))
	assert.Equal(t, "slug", err.Field)
	assert.Contains(t, err.Error(), "project.slug")

	err = NewDatabaseError("create", "category", errors.New(`duplicate key value violates unique constraint "idx_categories_name"`))
	assert.Equal(t, "name", err.Field)
}

func TestCheckers(t *testing.T) {
	wrapped := fmt.Errorf("seed: %w", NewNotFound("project"))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(NewInvalidFieldError("slug", "too long")))
	assert.True(t, IsConnectivityError(NewDatabaseError("ping", "database", driver.ErrBadConn)))
	assert.True(t, IsDatabaseTimeoutError(NewDatabaseError("find", "project", context.DeadlineExceeded)))
	assert.True(t, IsValidationError(NewInvalidFieldError("title", "too long")))
	assert.False(t, IsValidationError(NewNotFound("project")))
}

func TestGetFullError(t *testing.T) {
	inner := NewDatabaseError("find", "project", errors.New("relation does not exist"))
	outer := NewInternalErrorWithCause("listing failed", inner)

	full := outer.GetFullError()

	assert.Contains(t, full, "listing failed")
	assert.Contains(t, full, "Failed to find project")
	assert.Contains(t, full, "relation does not exist")
	assert.Equal(t, "project not found", NewNotFound("project").Error())
}
