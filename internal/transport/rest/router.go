// Package rest serves the latest monitor snapshot over HTTP.
package rest

import (
	"net/http"

	"procwatch/internal/config"
	"procwatch/internal/domain"
	"procwatch/internal/logger"
	"procwatch/internal/transport/rest/middleware"
)

type RouterDeps struct {
	Monitor *MonitorHandler
	Auth    *AuthHandler
	Metrics http.Handler
	Ws      http.HandlerFunc

	AuthService domain.AuthService
}

func NewRouter(cfg *config.Config, log logger.Logger, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.Logging(log))
	globalMw.Use(middleware.CORS(cfg.AllowedOrigins))

	userStack := middleware.New()
	userStack.Use(middleware.JWT(deps.AuthService))

	// HEALTH
	mux.HandleFunc("GET /health", deps.Monitor.Health)

	// AUTH
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)

	// MONITOR
	mux.Handle("GET /api/snapshot", userStack.ThenFunc(deps.Monitor.Snapshot))
	mux.Handle("GET /api/processes", userStack.ThenFunc(deps.Monitor.Processes))

	// METRICS
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}

	// WEBSOCKET
	if deps.Ws != nil {
		mux.Handle("GET /ws", userStack.ThenFunc(deps.Ws))
	}

	return globalMw.Apply(mux)
}
