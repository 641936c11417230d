package services

import (
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

const (
	PhaseUnknown    = "unknown"
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

// ovulationHalfWindow spans the fixed 4-day ovulation arc centered on the
// cycle midpoint: (L/2-2, L/2+2].
const ovulationHalfWindow = 2

type PhaseSnapshot struct {
	Phase         string  `json:"phase"`
	DayOfCycle    int     `json:"day_of_cycle"`
	CycleProgress float64 `json:"cycle_progress"`
	Overdue       bool    `json:"overdue"`
}

// CurrentPhase maps today onto the running cycle. The effective cycle and
// period lengths come from the most recent completed cycle when one exists,
// falling back to the configured defaults.
func CurrentPhase(history CycleHistory, settings models.CycleSettings, today time.Time) PhaseSnapshot {
	lastCycle, ok := history.LastCycle()
	if !ok {
		return PhaseSnapshot{Phase: PhaseUnknown}
	}

	dayOfCycle := daysBetween(lastCycle.PeriodStart, today) + 1
	if dayOfCycle < 1 {
		dayOfCycle = 1
	}

	cycleLength := effectiveCycleLength(history, settings)
	periodLength := effectivePeriodLength(history, settings)

	snapshot := PhaseSnapshot{
		DayOfCycle:    dayOfCycle,
		CycleProgress: clampFloat(float64(dayOfCycle)/float64(cycleLength), 0, 1),
		Overdue:       dayOfCycle > cycleLength,
	}

	half := float64(cycleLength) / 2
	day := float64(dayOfCycle)
	switch {
	case dayOfCycle <= periodLength:
		snapshot.Phase = PhaseMenstrual
	case day <= half-ovulationHalfWindow:
		// When the period reaches the ovulation arc the follicular band
		// collapses to empty and menstrual abuts ovulation directly.
		snapshot.Phase = PhaseFollicular
	case day <= half+ovulationHalfWindow:
		snapshot.Phase = PhaseOvulation
	default:
		snapshot.Phase = PhaseLuteal
	}

	return snapshot
}

func effectiveCycleLength(history CycleHistory, settings models.CycleSettings) int {
	lengths := history.CompletedCycleLengths()
	if len(lengths) > 0 {
		return lengths[len(lengths)-1]
	}
	if settings.AverageCycleLength > 0 {
		return settings.AverageCycleLength
	}
	return models.DefaultCycleLength
}

func effectivePeriodLength(history CycleHistory, settings models.CycleSettings) int {
	for i := len(history.Cycles) - 1; i >= 0; i-- {
		if length, known := history.Cycles[i].PeriodLength(); known && length > 0 {
			return length
		}
	}
	if settings.AveragePeriodLength > 0 {
		return settings.AveragePeriodLength
	}
	return models.DefaultPeriodLength
}
