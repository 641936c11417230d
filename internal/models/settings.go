package models

import "time"

const DefaultPMSWindowDays = 5

// CycleSettings is a single-row table of tunable defaults and feature
// toggles. Load it through SettingsService, which seeds the row on first use.
type CycleSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	AverageCycleLength  int       `gorm:"not null;default:28" json:"average_cycle_length"`
	AveragePeriodLength int       `gorm:"not null;default:5" json:"average_period_length"`
	LutealPhaseLength   int       `gorm:"not null;default:14" json:"luteal_phase_length"`
	TrackFertileWindow  bool      `gorm:"not null;default:true" json:"track_fertile_window"`
	TrackOvulation      bool      `gorm:"not null;default:true" json:"track_ovulation"`
	TrackPMS            bool      `gorm:"not null;default:true" json:"track_pms"`
	PMSWindowDays       int       `gorm:"not null;default:5" json:"pms_window_days"`
	ReminderEnabled     bool      `gorm:"not null;default:false" json:"reminder_enabled"`
	ReminderDaysBefore  int       `gorm:"not null;default:2" json:"reminder_days_before"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func DefaultCycleSettings() CycleSettings {
	return CycleSettings{
		AverageCycleLength:  DefaultCycleLength,
		AveragePeriodLength: DefaultPeriodLength,
		LutealPhaseLength:   DefaultLutealPhaseDays,
		TrackFertileWindow:  true,
		TrackOvulation:      true,
		TrackPMS:            true,
		PMSWindowDays:       DefaultPMSWindowDays,
		ReminderEnabled:     false,
		ReminderDaysBefore:  2,
	}
}
