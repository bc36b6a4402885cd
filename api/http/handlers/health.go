package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumematch/api/http/presenter"
	"github.com/artem13815/resumematch/pkg/health"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: процесс жив.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.StatusResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, presenter.StatusResponse{Status: "ok"})
}

// Ready: хранилище отвечает и каталог навыков загружен.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} presenter.StatusResponse
// @Failure 503 {object} presenter.StatusResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		slog.Warn("readiness check failed", slog.Any("error", err))
		return presenter.JSON(c, http.StatusServiceUnavailable, presenter.StatusResponse{
			Status:  "not_ready",
			Details: err.Error(),
		})
	}
	return presenter.JSON(c, http.StatusOK, presenter.StatusResponse{Status: "ready"})
}
