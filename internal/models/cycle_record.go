package models

import (
	"math"
	"time"
)

const (
	FlowSpotting = "spotting"
	FlowLight    = "light"
	FlowMedium   = "medium"
	FlowHeavy    = "heavy"
)

const (
	DefaultCycleLength     = 28
	DefaultPeriodLength    = 5
	DefaultLutealPhaseDays = 14
)

// CycleRecord is one period instance. PeriodEnd stays nil while the period
// is ongoing; at most one record may be active at a time.
type CycleRecord struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	PeriodStart   time.Time  `gorm:"type:date;not null;index" json:"period_start"`
	PeriodEnd     *time.Time `gorm:"type:date" json:"period_end"`
	FlowIntensity string     `gorm:"not null;default:''" json:"flow_intensity"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (record CycleRecord) IsActive() bool {
	return record.PeriodEnd == nil
}

// PeriodLength is the day difference between end and start; the second
// return value is false while the record is still active.
func (record CycleRecord) PeriodLength() (int, bool) {
	if record.PeriodEnd == nil {
		return 0, false
	}
	// Rounding over midnight-normalized dates absorbs the 23h and 25h
	// days around DST transitions.
	start := calendarDate(record.PeriodStart)
	end := calendarDate(*record.PeriodEnd)
	days := int(math.Round(end.Sub(start).Hours() / 24))
	if days < 0 {
		return 0, false
	}
	return days, true
}

func calendarDate(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func IsValidFlowIntensity(value string) bool {
	switch value {
	case "", FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

// FlowIntensityRank orders flow values for overlap merging; heavier wins.
func FlowIntensityRank(value string) int {
	switch value {
	case FlowSpotting:
		return 1
	case FlowLight:
		return 2
	case FlowMedium:
		return 3
	case FlowHeavy:
		return 4
	default:
		return 0
	}
}
