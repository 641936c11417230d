package services

import (
	"math"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

// recentCycleWindow bounds how many trailing completed cycles feed the
// prediction average.
const recentCycleWindow = 6

const (
	minPlausibleCycleLength = 15
	maxPlausibleCycleLength = 90
)

const (
	confidenceBase           = 0.3
	confidencePerCycle       = 0.1
	confidenceCeiling        = 0.95
	outOfRangeLengthPenalty  = 0.2
	variancePenaltyPerCV     = 1.0
	maxConfidenceCycleCredit = 6
)

type CyclePrediction struct {
	NextPeriodDate      time.Time  `json:"next_period_date"`
	DaysUntilNextPeriod int        `json:"days_until_next_period"`
	OvulationDate       *time.Time `json:"ovulation_date,omitempty"`
	DaysUntilOvulation  *int       `json:"days_until_ovulation,omitempty"`
	FertileWindowStart  *time.Time `json:"fertile_window_start,omitempty"`
	FertileWindowEnd    *time.Time `json:"fertile_window_end,omitempty"`
	AverageCycleLength  float64    `json:"average_cycle_length"`
	AveragePeriodLength float64    `json:"average_period_length"`
	Confidence          float64    `json:"confidence"`
}

// Predict extrapolates the next period from the trailing completed cycles.
// It returns nil with zero completed cycles; everything else degrades to a
// lower-confidence estimate instead of failing.
func Predict(history CycleHistory, settings models.CycleSettings, today time.Time) *CyclePrediction {
	lengths := history.CompletedCycleLengths()
	if len(lengths) == 0 {
		return nil
	}

	lastCycle, ok := history.LastCycle()
	if !ok {
		return nil
	}

	recent := tailInts(lengths, recentCycleWindow)
	averageCycleLength := averageInts(recent)

	outOfRange := false
	if averageCycleLength < minPlausibleCycleLength || averageCycleLength > maxPlausibleCycleLength {
		// Almost certainly a logging error; predict off the default
		// instead of rejecting.
		averageCycleLength = float64(defaultCycleLength(settings))
		outOfRange = true
	}

	todayDay := dateOnly(today)
	nextPeriodDate := dateOnly(lastCycle.PeriodStart.AddDate(0, 0, int(math.Round(averageCycleLength))))

	prediction := &CyclePrediction{
		NextPeriodDate:      nextPeriodDate,
		DaysUntilNextPeriod: daysBetween(todayDay, nextPeriodDate),
		AverageCycleLength:  averageCycleLength,
		AveragePeriodLength: averagePeriodLength(history, settings),
		Confidence:          predictionConfidence(len(lengths), recent, outOfRange),
	}

	lutealDays := settings.LutealPhaseLength
	if lutealDays <= 0 {
		lutealDays = models.DefaultLutealPhaseDays
	}

	// The window stays anchored on the ovulation estimate even when
	// ovulation itself is untracked.
	ovulationDate := nextPeriodDate.AddDate(0, 0, -lutealDays)
	if settings.TrackOvulation {
		daysUntilOvulation := daysBetween(todayDay, ovulationDate)
		prediction.OvulationDate = &ovulationDate
		prediction.DaysUntilOvulation = &daysUntilOvulation
	}
	if settings.TrackFertileWindow {
		fertileStart := ovulationDate.AddDate(0, 0, -5)
		fertileEnd := ovulationDate.AddDate(0, 0, 1)
		prediction.FertileWindowStart = &fertileStart
		prediction.FertileWindowEnd = &fertileEnd
	}

	return prediction
}

func predictionConfidence(completedCycleCount int, recent []int, outOfRange bool) float64 {
	confidence := confidenceBase + confidencePerCycle*float64(minInt(completedCycleCount, maxConfidenceCycleCredit))

	if mean := averageInts(recent); mean > 0 {
		variation := stddevInts(recent) / mean
		confidence -= variation * variancePenaltyPerCV
	}
	if outOfRange {
		confidence -= outOfRangeLengthPenalty
	}

	return clampFloat(confidence, 0, confidenceCeiling)
}

func averagePeriodLength(history CycleHistory, settings models.CycleSettings) float64 {
	lengths := history.KnownPeriodLengths()
	if len(lengths) == 0 {
		return float64(defaultPeriodLength(settings))
	}
	return averageInts(tailInts(lengths, recentCycleWindow))
}

func defaultCycleLength(settings models.CycleSettings) int {
	if settings.AverageCycleLength > 0 {
		return settings.AverageCycleLength
	}
	return models.DefaultCycleLength
}

func defaultPeriodLength(settings models.CycleSettings) int {
	if settings.AveragePeriodLength > 0 {
		return settings.AveragePeriodLength
	}
	return models.DefaultPeriodLength
}
