package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr struct{ code int }

func (s statusErr) Error() string   { return fmt.Sprintf("status %d", s.code) }
func (s statusErr) HTTPStatus() int { return s.code }

func TestKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   error
		status int
	}{
		{"invalid_data", InvalidData("bad %s", "x"), ErrInvalidData, http.StatusBadRequest},
		{"not_found", NotFound("missing"), ErrResourceNotFound, http.StatusNotFound},
		{"conflict", Conflict("dup"), ErrResourceConflict, http.StatusConflict},
		{"invalid_operation", InvalidOperation("closed"), ErrInvalidOperation, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.kind)
			assert.True(t, IsBusiness(tc.err))
			assert.Equal(t, tc.status, StatusOf(tc.err))
		})
	}
	assert.Equal(t, "bad x", InvalidData("bad %s", "x").Error())
}

func TestTechnical(t *testing.T) {
	cause := errors.New("connection refused")
	err := Technical(cause)

	require.ErrorIs(t, err, ErrTechnical)
	require.ErrorIs(t, err, cause)
	assert.False(t, IsBusiness(err))
	assert.Equal(t, "connection refused", err.Error())
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))

	forwarded := Technical(fmt.Errorf("fetch: %w", statusErr{code: http.StatusBadGateway}))
	assert.Equal(t, http.StatusBadGateway, StatusOf(forwarded))
}

func TestGuard(t *testing.T) {
	assert.NoError(t, Guard(nil))

	biz := Conflict("dup")
	assert.Same(t, biz, Guard(biz))

	wrappedBiz := fmt.Errorf("ctx: %w", NotFound("gone"))
	assert.Equal(t, wrappedBiz, Guard(wrappedBiz))

	tech := Guard(context.DeadlineExceeded)
	require.ErrorIs(t, tech, ErrTechnical)
	require.ErrorIs(t, tech, context.DeadlineExceeded)

	assert.Same(t, tech, Guard(tech))
}

func TestStatusOf_Unclassified(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
