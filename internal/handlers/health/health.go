// Package health serves the liveness endpoint of standupd.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const checkTimeout = 3 * time.Second

// Checker verifies that an infrastructure dependency is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// RedisChecker pings a Redis client
type RedisChecker struct {
	Client redis.Cmdable
}

// Check pings Redis
func (c RedisChecker) Check(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// Handler reports the state of every registered check
type Handler struct {
	checks map[string]Checker
	logger logrus.FieldLogger
}

// NewHandler creates a health handler
func NewHandler(logger logrus.FieldLogger, checks map[string]Checker) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		checks: checks,
		logger: logger.WithField("component", "health"),
	}
}

// Routes returns the router to mount under /healthz
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.check)
	return r
}

type result struct {
	Status string `json:"status"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	results := make(map[string]result, len(h.checks))
	status := http.StatusOK

	for name, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			h.logger.WithField("check", name).WithError(err).Warn("health check failed")
			results[name] = result{Status: "error"}
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = result{Status: "ok"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.logger.WithError(err).Debug("failed to write health response")
	}
}
