package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"staywise/config"
	"staywise/infras/otel/mocks"
	cacheMocks "staywise/shared/cache/mocks"
	transport "staywise/transport/http"
	"staywise/transport/http/middleware"
	"staywise/transport/http/router"
)

func newServer(t *testing.T) *transport.HTTP {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://staywise.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

	return transport.New(cfg, router.New(router.DomainHandlers{}), mw, nil)
}

func TestHealth(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetrics(t *testing.T) {
	server := newServer(t)

	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `staywise_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestCORS(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://staywise.example")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "https://staywise.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
