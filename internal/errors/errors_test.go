package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := AuthenticationError("Invalid email or password")
	assert.Equal(t, "authentication: Invalid email or password", err.Error())
}

func TestError_MessageWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := InternalError("internal server error", cause)
	assert.Equal(t, "internal: internal server error: boom", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := InternalError("internal server error", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestError_ToGraphQL(t *testing.T) {
	entry := ConflictError("Email already in use").ToGraphQL("register")
	assert.Equal(t, "Email already in use", entry.Message)
	assert.Equal(t, []string{"register"}, entry.Path)
}

func TestError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{ValidationError("bad"), http.StatusBadRequest},
		{AuthenticationError("bad"), http.StatusUnauthorized},
		{ConflictError("dup"), http.StatusConflict},
		{NotFoundError("missing"), http.StatusNotFound},
		{InternalError("oops", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAsStructuredError_Nil(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))
}

func TestAsStructuredError_PassThrough(t *testing.T) {
	original := ValidationError("Text cannot be empty")
	got := AsStructuredError(fmt.Errorf("dispatch: %w", original))
	require.NotNil(t, got)
	assert.Same(t, original, got)
}

func TestAsStructuredError_WrapsUnknown(t *testing.T) {
	cause := stderrors.New("boom")
	got := AsStructuredError(cause)
	require.NotNil(t, got)
	assert.Equal(t, TypeInternal, got.Type)
	assert.Equal(t, "internal server error", got.Message)
	assert.True(t, stderrors.Is(got, cause))
}
