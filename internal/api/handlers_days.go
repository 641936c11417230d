package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lunara/internal/services"
)

type dayEntryRequest struct {
	FlowLevel    string   `json:"flow_level"`
	Mood         string   `json:"mood"`
	PainLevel    *int     `json:"pain_level"`
	EnergyLevel  *int     `json:"energy_level"`
	Symptoms     []string `json:"symptoms"`
	SleepQuality string   `json:"sleep_quality"`
	Notes        string   `json:"notes"`
}

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	from, err := parseDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	logs, err := handler.days.FetchLogsForRange(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.days.FetchLog(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	request := dayEntryRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.days.UpsertLog(day, services.DayEntryInput{
		FlowLevel:    request.FlowLevel,
		Mood:         request.Mood,
		PainLevel:    request.PainLevel,
		EnergyLevel:  request.EnergyLevel,
		Symptoms:     request.Symptoms,
		SleepQuality: request.SleepQuality,
		Notes:        request.Notes,
	})
	switch {
	case err == nil:
		return c.JSON(entry)
	case errors.Is(err, services.ErrInvalidFlowLevel),
		errors.Is(err, services.ErrInvalidMood),
		errors.Is(err, services.ErrInvalidPainLevel),
		errors.Is(err, services.ErrInvalidEnergyLevel),
		errors.Is(err, services.ErrInvalidSleepQuality),
		errors.Is(err, services.ErrUnknownSymptom):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.days.DeleteLog(day); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	}
	return c.JSON(fiber.Map{"ok": true})
}
