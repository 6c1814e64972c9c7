package apperrors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, New(ErrForbidden, "invalid token").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, New(ErrBadStatus, "").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, New(ErrStoreFailure, "").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, New(ErrNotifyFailure, "").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, New(Code("UNKNOWN"), "").HTTPStatus())
}

func TestNewFillsMessageAndDetail(t *testing.T) {
	err := New(ErrForbidden, "invalid token")

	assert.Equal(t, "forbidden", err.Message)
	assert.Equal(t, "invalid token", err.Detail)
}

func TestErrorRendering(t *testing.T) {
	err := New(ErrBadStatus, `required 'ftbfs' or 'leaf', got "bogus"`)

	assert.Contains(t, err.Error(), "BAD_STATUS")
	assert.Contains(t, err.Error(), "bogus")

	var nilErr *AppError
	assert.Equal(t, "<nil>", nilErr.Error())
}
