package handler

import (
	"net/http"
	"staywise/config"
	"staywise/di"
	"staywise/infras/metrics"
	"staywise/shared/logger"
	"sync"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler serves the API as a single serverless function. The dependency
// graph is built on the first invocation and reused while the instance is warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		metrics.Register()

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
