package onboarding_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"staywise/infras/otel/mocks"
	onboardingMocks "staywise/internal/domains/onboarding/mocks"
	"staywise/internal/domains/onboarding/model"
	"staywise/internal/domains/onboarding/model/dto"
	"staywise/internal/handlers/onboarding"
)

func newServer(t *testing.T) (*onboardingMocks.MockOnboarding, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := onboardingMocks.NewMockOnboarding(ctrl)

	handler := onboarding.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestStartSession(t *testing.T) {
	svc, server := newServer(t)

	svc.EXPECT().Start(gomock.Any()).Return(dto.SessionResponse{ID: "s1", Step: "role"}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"s1"`)
}

func TestChooseRole(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, server := newServer(t)

		svc.EXPECT().
			ChooseRole(gomock.Any(), "s1", dto.ChooseRoleRequest{Role: "OWNER"}).
			Return(dto.SessionResponse{ID: "s1", Step: "basic", Role: "OWNER"}, nil)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding/s1/role", strings.NewReader(`{"role":"OWNER"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, server := newServer(t)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding/s1/role", strings.NewReader(`{"role":"ADMIN"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFillProfile(t *testing.T) {
	t.Run("empty email is accepted", func(t *testing.T) {
		svc, server := newServer(t)

		svc.EXPECT().Fill(gomock.Any(), "s1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req dto.FillRequest) (dto.SessionResponse, error) {
				assert.NotNil(t, req.Email)
				assert.Nil(t, req.Phone)

				return dto.SessionResponse{ID: "s1"}, nil
			})

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/onboarding/s1", strings.NewReader(`{"email":""}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, server := newServer(t)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/onboarding/s1", strings.NewReader(`{"email":"nope"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAgree_MissingField(t *testing.T) {
	_, server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding/s1/agreement", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNext_Completed(t *testing.T) {
	svc, server := newServer(t)

	svc.EXPECT().Next(gomock.Any(), "s1").Return(dto.SessionResponse{}, model.ErrAlreadyCompleted)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding/s1/next", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFinalize(t *testing.T) {
	t.Run("commission not accepted", func(t *testing.T) {
		svc, server := newServer(t)

		svc.EXPECT().Finalize(gomock.Any(), "s1").Return(dto.SessionResponse{}, model.ErrCommissionNotAccepted)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding/s1/finalize", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("interrupted", func(t *testing.T) {
		svc, server := newServer(t)

		svc.EXPECT().Finalize(gomock.Any(), "s1").Return(dto.SessionResponse{}, context.Canceled)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding/s1/finalize", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("completed", func(t *testing.T) {
		svc, server := newServer(t)

		svc.EXPECT().Finalize(gomock.Any(), "s1").Return(dto.SessionResponse{ID: "s1", Completed: true}, nil)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/onboarding/s1/finalize", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"completed":true`)
	})
}
