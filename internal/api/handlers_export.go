package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportData(c *fiber.Ctx) error {
	from, err := parseOptionalDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseOptionalDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if from != nil && to != nil && to.Before(*from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	now := time.Now().In(handler.location)
	stamp := now.Format("2006-01-02")

	switch strings.ToLower(strings.TrimSpace(c.Query("format", "json"))) {
	case "csv":
		payload, err := handler.export.BuildCSV(from, to)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=lunara-export-%s.csv", stamp))
		return c.Send(payload)
	case "json":
		payload, err := handler.export.BuildJSON(from, to, now)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=lunara-export-%s.json", stamp))
		return c.Send(payload)
	default:
		return apiError(c, fiber.StatusBadRequest, "unsupported export format")
	}
}
