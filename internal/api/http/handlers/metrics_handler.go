package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-planner/internal/api/dto"
	"github.com/spec-kit/event-planner/internal/observability"
	"github.com/spec-kit/event-planner/internal/service"
)

// MetricsHandler serves the basic metrics snapshot.
type MetricsHandler struct {
	stats   *service.StatsService
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(stats *service.StatsService, metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{stats: stats, metrics: metrics}
}

// Snapshot GET /api/metrics.
func (h *MetricsHandler) Snapshot(c *fiber.Ctx) error {
	counts, err := h.stats.Counts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.MetricsResponse{
		Users:         counts.Users,
		Events:        counts.Events,
		Vendors:       counts.Vendors,
		Bookings:      counts.Bookings,
		UptimeSeconds: h.metrics.UptimeSeconds(),
	})
}
