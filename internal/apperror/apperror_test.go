package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	// Wrapping preserves errors.Is matching via the stable code.
	wrapped := fmt.Errorf("create note: %w", ErrPermissionDenied)
	assert.ErrorIs(t, wrapped, ErrPermissionDenied)
	assert.NotErrorIs(t, wrapped, ErrNotAuthor)
}

func TestTransientWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transient(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeTransient, CodeOf(err))
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrNotesNotEnabled, http.StatusBadRequest},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrEmptyContent, http.StatusBadRequest},
		{ErrContentTooLong, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrNotAuthor, http.StatusForbidden},
		{errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusOf(tc.err), "error %v", tc.err)
	}
}
