package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lunara/internal/services"
)

type startPeriodRequest struct {
	Date          string `json:"date"`
	FlowIntensity string `json:"flow_intensity"`
	Notes         string `json:"notes"`
}

type endPeriodRequest struct {
	Date string `json:"date"`
}

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	records, err := handler.cycles.ListCycles()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycles")
	}
	return c.JSON(records)
}

// GetActiveCycle returns the currently open period record, or JSON null when
// no period is running.
func (handler *Handler) GetActiveCycle(c *fiber.Ctx) error {
	record, found, err := handler.cycles.ActiveCycle()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch active cycle")
	}
	if !found {
		return c.JSON(nil)
	}
	return c.JSON(record)
}

func (handler *Handler) StartPeriod(c *fiber.Ctx) error {
	request := startPeriodRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	day, err := parseDayParam(request.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.cycles.StartPeriod(day, request.FlowIntensity, request.Notes)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(record)
	case errors.Is(err, services.ErrInvalidFlowIntensity),
		errors.Is(err, services.ErrPeriodStartBeforePrev),
		errors.Is(err, services.ErrPeriodAlreadyActive):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to start period")
	}
}

func (handler *Handler) EndPeriod(c *fiber.Ctx) error {
	request := endPeriodRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	day, err := parseDayParam(request.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.cycles.EndPeriod(day)
	switch {
	case err == nil:
		return c.JSON(record)
	case errors.Is(err, services.ErrNoActivePeriod),
		errors.Is(err, services.ErrPeriodEndBeforeStart):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to end period")
	}
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	recordID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	err = handler.cycles.DeleteCycle(uint(recordID))
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"ok": true})
	case errors.Is(err, services.ErrCycleNotFound):
		return apiError(c, fiber.StatusNotFound, "cycle not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle")
	}
}
