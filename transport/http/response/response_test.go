package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"staywise/shared/failure"
	"staywise/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "s1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"s1"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure keeps its message",
			err:      fmt.Errorf("select: %w", failure.Conflict("room is not available")),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"room is not available"}`,
		},
		{
			name:     "unexpected error is not leaked",
			err:      errors.New("pq: relation \"bookings\" does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
