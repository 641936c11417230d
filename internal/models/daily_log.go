package models

import "time"

const FlowNone = "none"

const (
	MoodGreat     = "great"
	MoodGood      = "good"
	MoodNeutral   = "neutral"
	MoodLow       = "low"
	MoodIrritable = "irritable"
	MoodAnxious   = "anxious"
)

const (
	SleepGood     = "good"
	SleepFair     = "fair"
	SleepPoor     = "poor"
	SleepRestless = "restless"
)

const (
	PainLevelMin = 0
	PainLevelMax = 10

	EnergyLevelMin = 0
	EnergyLevelMax = 10
)

// DailyLog enriches a single calendar date. One row per date.
type DailyLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	FlowLevel    string    `gorm:"not null;default:none" json:"flow_level"`
	Mood         string    `gorm:"not null;default:''" json:"mood"`
	PainLevel    *int      `json:"pain_level"`
	EnergyLevel  *int      `json:"energy_level"`
	Symptoms     []string  `gorm:"serializer:json" json:"symptoms"`
	SleepQuality string    `gorm:"not null;default:''" json:"sleep_quality"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func IsValidFlowLevel(value string) bool {
	switch value {
	case "", FlowNone, FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

func IsValidMood(value string) bool {
	switch value {
	case "", MoodGreat, MoodGood, MoodNeutral, MoodLow, MoodIrritable, MoodAnxious:
		return true
	default:
		return false
	}
}

func IsValidSleepQuality(value string) bool {
	switch value {
	case "", SleepGood, SleepFair, SleepPoor, SleepRestless:
		return true
	default:
		return false
	}
}

func IsValidPainLevel(value int) bool {
	return value >= PainLevelMin && value <= PainLevelMax
}

func IsValidEnergyLevel(value int) bool {
	return value >= EnergyLevelMin && value <= EnergyLevelMax
}
