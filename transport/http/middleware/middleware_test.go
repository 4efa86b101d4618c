package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"staywise/config"
	"staywise/infras/otel/mocks"
	cacheMocks "staywise/shared/cache/mocks"
	"staywise/transport/http/middleware"
)

func newLimitedServer(t *testing.T, enable bool) (*cacheMocks.MockRedisCache, *mocks.Otel, http.Handler) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	otl := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(otl, cfg, mockCache)

	router := chi.NewRouter()
	router.Use(mw.Tracing, mw.RateLimit())
	router.Get("/listings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mockCache, otl, router
}

func request() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/listings/p_1", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	req.Header.Set("User-Agent", "test")

	return req
}

func TestRateLimit(t *testing.T) {
	mockCache, _, server := newLimitedServer(t, true)

	gomock.InOrder(
		mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1:test", 60).Return(int64(1), nil),
		mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1:test", 60).Return(int64(2), nil),
		mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1:test", 60).Return(int64(3), nil),
	)

	first := httptest.NewRecorder()
	server.ServeHTTP(first, request())
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := httptest.NewRecorder()
	server.ServeHTTP(second, request())
	assert.Equal(t, http.StatusOK, second.Code)

	third := httptest.NewRecorder()
	server.ServeHTTP(third, request())
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_CacheDown(t *testing.T) {
	mockCache, _, server := newLimitedServer(t, true)

	mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, request())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	_, otl, server := newLimitedServer(t, false)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, request())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"GET /listings/p_1"}, otl.Spans())
}

func TestRateLimit_RetryAfter(t *testing.T) {
	mockCache, _, server := newLimitedServer(t, true)

	mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(5), nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, request())

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_KeyIgnoresRemotePort(t *testing.T) {
	mockCache, _, server := newLimitedServer(t, true)

	mockCache.EXPECT().Incr(gomock.Any(), "limiter:192.0.2.7:unknown", 60).Return(int64(1), nil).Times(2)

	for _, remote := range []string{"192.0.2.7:51000", "192.0.2.7:51001"} {
		req := httptest.NewRequest(http.MethodGet, "/listings/p_1", nil)
		req.RemoteAddr = remote

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestTracing_RequestID(t *testing.T) {
	_, otl, server := newLimitedServer(t, false)

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Mount("/", server)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Len(t, otl.Spans(), 1)
}
