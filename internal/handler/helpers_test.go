package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AndreHordd/Zlagoda/internal/repository"
	"github.com/AndreHordd/Zlagoda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func callWriteServiceError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeServiceError(c, err)
	return w
}

func TestWriteServiceErrorMapsSentinels(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, callWriteServiceError(t, service.ErrNotFound).Code)
	assert.Equal(t, http.StatusConflict, callWriteServiceError(t, service.ErrReferenced).Code)
	assert.Equal(t, http.StatusConflict, callWriteServiceError(t, service.ErrConflict).Code)
}

// A concurrent checkout can drain stock between validation and the guarded
// decrement; the loser must see the same 422 shape as a pre-validated
// rejection, not a 500.
func TestWriteServiceErrorMapsConcurrentOversell(t *testing.T) {
	w := callWriteServiceError(t, repository.ErrInsufficientStock)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0], "insufficient stock")
}

// A receipt number taken between ExistsNumber and the insert surfaces as a
// duplicate-key violation; the caller gets a 409 like the pre-checked case.
func TestWriteServiceErrorMapsDuplicateKey(t *testing.T) {
	w := callWriteServiceError(t, gorm.ErrDuplicatedKey)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWriteServiceErrorDefersUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeServiceError(c, errors.New("boom"))
	// Unknown errors are pushed to the context for the ErrorHandler middleware.
	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors.Last(), "boom")
}
