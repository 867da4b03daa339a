package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"school-stats/models"
)

func TestResponseJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseJSON(rec, models.Health{Status: "ok", Schools: 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","schools":3}`, rec.Body.String())
}

func TestResponseJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseJSON(rec, math.NaN())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to encode response"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusNotFound, models.Error{Message: "School not found"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"School not found"}`, rec.Body.String())
}
