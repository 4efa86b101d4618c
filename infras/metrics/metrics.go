package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "staywise"

const (
	RecommendationOK       = "ok"
	RecommendationEmpty    = "empty"
	RecommendationFallback = "fallback"
)

const (
	SendAccepted = "accepted"
	SendBusy     = "busy"
	SendBlank    = "blank"
)

var (
	once sync.Once

	recommendations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_total",
			Help:      "Count of recommendation calls by outcome.",
		},
		[]string{"outcome"},
	)

	onboardingCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "onboarding_completed_total",
			Help:      "Count of finished onboarding sessions by role.",
		},
		[]string{"role"},
	)

	conciergeSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "concierge_send_total",
			Help:      "Count of concierge messages by result.",
		},
		[]string{"result"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(recommendations, onboardingCompleted, conciergeSends, httpRequests, httpDuration)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	Register()

	return promhttp.Handler()
}

func IncRecommendation(outcome string) {
	recommendations.WithLabelValues(outcome).Inc()
}

func IncOnboardingCompleted(role string) {
	onboardingCompleted.WithLabelValues(role).Inc()
}

func IncConciergeSend(result string) {
	conciergeSends.WithLabelValues(result).Inc()
}

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
