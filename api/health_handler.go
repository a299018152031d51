package api

import (
	"context"
	"net/http"
	"time"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// HealthChecker is anything that can tell whether the store answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       HealthChecker
	startupTime time.Time
}

func newHealthHandler(store HealthChecker, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		startupTime: startupTime,
	}
}

type healthResponse struct {
	OK     bool              `json:"ok"`
	Uptime string            `json:"uptime"`
	Checks map[string]string `json:"checks"`
}

// getHealth pings the store; an unreachable store turns the answer into a 503
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /_health [get]
func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{
			OK:     true,
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
			Checks: map[string]string{},
		}

		if h.store == nil {
			response.Checks["database"] = "skipped"
		} else {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			if err := h.store.Ping(ctx); err != nil {
				response.OK = false
				response.Checks["database"] = "unhealthy"
				if errs.IsDatabaseTimeoutError(err) {
					response.Checks["database"] = "timeout"
				}
				h.logger.Error().Err(err).Msg("database health check failed")
			} else {
				response.Checks["database"] = "healthy"
			}
		}

		status := http.StatusOK
		if !response.OK {
			status = http.StatusServiceUnavailable
		}
		h.responder.WriteJSONStatus(w, status, response)
	}
}
