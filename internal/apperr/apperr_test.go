package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, err)
	return w
}

func TestRespond_KnownKinds(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{ErrInvalidCredentials, http.StatusNotFound},
		{ErrDuplicateUsername, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrUnknownRecipient, http.StatusBadRequest},
		{ErrAlreadyRead, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
	}
	for _, tc := range cases {
		w := respondWith(tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Message)
		assert.Contains(t, w.Body.String(), tc.err.Message)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"status":%d`, tc.status))
	}
}

func TestRespond_WrappedError(t *testing.T) {
	w := respondWith(fmt.Errorf("store: %w", ErrNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespond_UnknownErrorIs500(t *testing.T) {
	w := respondWith(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal details never reach the client.
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestValidation_CarriesMessage(t *testing.T) {
	w := respondWith(Validation("body required"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "body required")
}
