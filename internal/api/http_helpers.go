package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dayParamLayout = "2006-01-02"
const monthParamLayout = "2006-01"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayParamLayout, strings.TrimSpace(raw), location)
}

func parseOptionalDayParam(raw string, location *time.Location) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dayParamLayout, trimmed, location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseMonthParam(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(monthParamLayout, strings.TrimSpace(raw), location)
}

// referenceDate resolves the computation "today": an explicit ?today=
// override keeps responses deterministic, otherwise the server clock.
func referenceDate(c *fiber.Ctx, location *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("today"))
	if raw == "" {
		return time.Now().In(location), nil
	}
	return time.ParseInLocation(dayParamLayout, raw, location)
}
