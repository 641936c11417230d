package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/lunara/internal/models"
)

var (
	ErrSettingsCycleLengthOutOfRange  = errors.New("settings cycle length out of range")
	ErrSettingsPeriodLengthOutOfRange = errors.New("settings period length out of range")
	ErrSettingsLutealLengthOutOfRange = errors.New("settings luteal phase length out of range")
	ErrSettingsPMSWindowOutOfRange    = errors.New("settings pms window out of range")
	ErrSettingsReminderLeadOutOfRange = errors.New("settings reminder lead out of range")
	ErrSettingsPeriodExceedsHalfCycle = errors.New("settings period length incompatible with cycle length")
	ErrSettingsLoadFailed             = errors.New("load settings failed")
	ErrSettingsSaveFailed             = errors.New("save settings failed")
)

type SettingsRecordRepository interface {
	Find() (models.CycleSettings, bool, error)
	Create(settings *models.CycleSettings) error
	Save(settings *models.CycleSettings) error
}

type SettingsService struct {
	settings SettingsRecordRepository
}

type SettingsUpdateInput struct {
	AverageCycleLength  int
	AveragePeriodLength int
	LutealPhaseLength   int
	TrackFertileWindow  bool
	TrackOvulation      bool
	TrackPMS            bool
	PMSWindowDays       int
	ReminderEnabled     bool
	ReminderDaysBefore  int
}

func NewSettingsService(settings SettingsRecordRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Load returns the settings row, seeding the defaults on first use.
func (service *SettingsService) Load() (models.CycleSettings, error) {
	settings, found, err := service.settings.Find()
	if err != nil {
		return models.CycleSettings{}, fmt.Errorf("%w: %v", ErrSettingsLoadFailed, err)
	}
	if found {
		return settings, nil
	}

	seeded := models.DefaultCycleSettings()
	if err := service.settings.Create(&seeded); err != nil {
		return models.CycleSettings{}, fmt.Errorf("%w: %v", ErrSettingsSaveFailed, err)
	}
	return seeded, nil
}

func (service *SettingsService) Update(input SettingsUpdateInput) (models.CycleSettings, error) {
	if err := validateSettingsInput(input); err != nil {
		return models.CycleSettings{}, err
	}

	settings, err := service.Load()
	if err != nil {
		return models.CycleSettings{}, err
	}

	settings.AverageCycleLength = input.AverageCycleLength
	settings.AveragePeriodLength = input.AveragePeriodLength
	settings.LutealPhaseLength = input.LutealPhaseLength
	settings.TrackFertileWindow = input.TrackFertileWindow
	settings.TrackOvulation = input.TrackOvulation
	settings.TrackPMS = input.TrackPMS
	settings.PMSWindowDays = input.PMSWindowDays
	settings.ReminderEnabled = input.ReminderEnabled
	settings.ReminderDaysBefore = input.ReminderDaysBefore

	if err := service.settings.Save(&settings); err != nil {
		return models.CycleSettings{}, fmt.Errorf("%w: %v", ErrSettingsSaveFailed, err)
	}
	return settings, nil
}

func validateSettingsInput(input SettingsUpdateInput) error {
	if !IsValidCycleLengthSetting(input.AverageCycleLength) {
		return ErrSettingsCycleLengthOutOfRange
	}
	if !IsValidPeriodLengthSetting(input.AveragePeriodLength) {
		return ErrSettingsPeriodLengthOutOfRange
	}
	if !IsValidLutealLengthSetting(input.LutealPhaseLength) {
		return ErrSettingsLutealLengthOutOfRange
	}
	if input.PMSWindowDays < 0 || input.PMSWindowDays > 14 {
		return ErrSettingsPMSWindowOutOfRange
	}
	if input.ReminderDaysBefore < 0 || input.ReminderDaysBefore > 14 {
		return ErrSettingsReminderLeadOutOfRange
	}
	if input.AveragePeriodLength*2 >= input.AverageCycleLength {
		return ErrSettingsPeriodExceedsHalfCycle
	}
	return nil
}

func IsValidCycleLengthSetting(value int) bool {
	return value >= 15 && value <= 90
}

func IsValidPeriodLengthSetting(value int) bool {
	return value >= 1 && value <= 14
}

func IsValidLutealLengthSetting(value int) bool {
	return value >= 10 && value <= 16
}
