package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	now, err := referenceDate(c, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid today override")
	}

	view, err := handler.dashboard.BuildDashboard(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return c.JSON(view)
}

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := handler.dashboard.BuildStatistics()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build statistics")
	}
	// nil marshals to JSON null: the client's "not enough data yet" state.
	return c.JSON(stats)
}

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	monthStart, err := parseMonthParam(c.Params("month"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}
	now, err := referenceDate(c, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid today override")
	}

	days, err := handler.dashboard.BuildCalendarMonth(monthStart, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}
	return c.JSON(days)
}
