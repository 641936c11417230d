package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lunara/internal/services"
)

type settingsRequest struct {
	AverageCycleLength  int  `json:"average_cycle_length"`
	AveragePeriodLength int  `json:"average_period_length"`
	LutealPhaseLength   int  `json:"luteal_phase_length"`
	TrackFertileWindow  bool `json:"track_fertile_window"`
	TrackOvulation      bool `json:"track_ovulation"`
	TrackPMS            bool `json:"track_pms"`
	PMSWindowDays       int  `json:"pms_window_days"`
	ReminderEnabled     bool `json:"reminder_enabled"`
	ReminderDaysBefore  int  `json:"reminder_days_before"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.settings.Load()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	request := settingsRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := handler.settings.Update(services.SettingsUpdateInput{
		AverageCycleLength:  request.AverageCycleLength,
		AveragePeriodLength: request.AveragePeriodLength,
		LutealPhaseLength:   request.LutealPhaseLength,
		TrackFertileWindow:  request.TrackFertileWindow,
		TrackOvulation:      request.TrackOvulation,
		TrackPMS:            request.TrackPMS,
		PMSWindowDays:       request.PMSWindowDays,
		ReminderEnabled:     request.ReminderEnabled,
		ReminderDaysBefore:  request.ReminderDaysBefore,
	})
	switch {
	case err == nil:
		return c.JSON(settings)
	case errors.Is(err, services.ErrSettingsCycleLengthOutOfRange),
		errors.Is(err, services.ErrSettingsPeriodLengthOutOfRange),
		errors.Is(err, services.ErrSettingsLutealLengthOutOfRange),
		errors.Is(err, services.ErrSettingsPMSWindowOutOfRange),
		errors.Is(err, services.ErrSettingsReminderLeadOutOfRange),
		errors.Is(err, services.ErrSettingsPeriodExceedsHalfCycle):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
}
