package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"staywise/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("email is invalid")), code: http.StatusBadRequest, message: "email is invalid"},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("commission must be accepted"), code: http.StatusBadRequest, message: "commission must be accepted"},
		{name: "NotFound", err: failure.NotFound("listing not found"), code: http.StatusNotFound, message: "listing not found"},
		{name: "Conflict", err: failure.Conflict("room is not available"), code: http.StatusConflict, message: "room is not available"},
		{name: "Unavailable", err: failure.Unavailable("onboarding was interrupted"), code: http.StatusServiceUnavailable, message: "onboarding was interrupted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Error())
		})
	}
}

func TestBadRequestNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "failure", err: failure.NotFound("room not found"), code: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("select room: %w", failure.Conflict("room is not available")), code: http.StatusConflict},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "room is not available", failure.PublicMessage(fmt.Errorf("select room: %w", failure.Conflict("room is not available"))))
	assert.Equal(t, "Internal Server Error", failure.PublicMessage(errors.New("pq: password authentication failed")))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("next: %w", failure.Conflict("onboarding already completed"))

	assert.True(t, failure.Is(err, http.StatusConflict))
	assert.False(t, failure.Is(err, http.StatusNotFound))
	assert.False(t, failure.Is(errors.New("boom"), http.StatusConflict))
}
