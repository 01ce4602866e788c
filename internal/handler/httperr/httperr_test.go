//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/handler/httperr"
	"fleet-workflow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", workorder.ErrEmptyParts, http.StatusBadRequest},
		{"not found", errs.NotFound("missing"), http.StatusNotFound},
		{"insufficient stock", errs.Mark(errs.New("P1 short"), errs.ErrInsufficientStock), http.StatusConflict},
		{"invalid transition", workorder.ErrInvalidTransition, http.StatusConflict},
		{"unclassified", errs.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, httperr.StatusOf(tc.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("exposes details of classified errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.Abort(c, errs.WithDetail(errs.Mark(errs.New("P1 short"), errs.ErrInsufficientStock), "insufficient stock for part P1"), "Registration failed")

		require.Equal(t, http.StatusConflict, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Registration failed", body["error"].(map[string]any)["message"])
		assert.Equal(t, "insufficient stock for part P1", body["detail"])
	})

	t.Run("hides internal causes", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.Abort(c, errs.WithDetail(errs.New("pool exhausted"), "dsn=secret"), "Registration failed")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
		assert.Contains(t, w.Body.String(), "Internal server error")
	})
}
