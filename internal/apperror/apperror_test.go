package apperror

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(http.StatusNotFound, "missing")

	se, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, se.Status())
	assert.Equal(t, "missing", se.Message())
	assert.Equal(t, "missing", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(http.StatusInternalServerError, "%s is undefined", "ACCESS_TOKEN")
	assert.Equal(t, "ACCESS_TOKEN is undefined", err.Error())
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Wrap(http.StatusServiceUnavailable, "upstream unavailable", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "upstream unavailable: dial tcp: refused", err.Error())

	se, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "upstream unavailable", se.Message())
}

func TestWrap_NilCause(t *testing.T) {
	err := Wrap(http.StatusBadRequest, "bad", nil)
	assert.Equal(t, "bad", err.Error())

	se, ok := As(err)
	require.True(t, ok)
	assert.NoError(t, se.Unwrap())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"status", New(http.StatusForbidden, "no"), http.StatusForbidden},
		{"wrapped status", errors.Wrap(New(http.StatusConflict, "dup"), "create"), http.StatusConflict},
		{"out of range", New(200, "ok?"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}
