package services

import (
	"math"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

// DayClassification carries independent facets per calendar day. Facets
// combine freely; visual precedence belongs to the caller.
type DayClassification struct {
	IsPeriodDay       bool `json:"is_period_day"`
	IsPredictedPeriod bool `json:"is_predicted_period"`
	IsOvulationDay    bool `json:"is_ovulation_day"`
	IsFertileDay      bool `json:"is_fertile_day"`
	IsPmsDay          bool `json:"is_pms_day"`
	HasLog            bool `json:"has_log"`
}

// ClassifyMonth classifies every day of the month containing monthStart,
// keyed by "2006-01-02". Predictions are projected forward cycle by cycle so
// months past the next period still render expected spans.
func ClassifyMonth(monthStart time.Time, history CycleHistory, prediction *CyclePrediction, settings models.CycleSettings) map[string]DayClassification {
	firstDay := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, monthStart.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	loggedPeriod := make(map[string]bool)
	pmsDays := make(map[string]bool)
	pmsWindowDays := settings.PMSWindowDays
	if pmsWindowDays <= 0 {
		pmsWindowDays = models.DefaultPMSWindowDays
	}

	for _, record := range history.Cycles {
		spanEnd := record.PeriodStart
		if record.PeriodEnd != nil {
			spanEnd = *record.PeriodEnd
		} else if settings.AveragePeriodLength > 1 {
			// Active record: assume the usual period length until closed.
			spanEnd = record.PeriodStart.AddDate(0, 0, settings.AveragePeriodLength-1)
		}
		for day := record.PeriodStart; !day.After(spanEnd); day = day.AddDate(0, 0, 1) {
			loggedPeriod[day.Format(dayKeyLayout)] = true
		}
		if settings.TrackPMS {
			markDaysBefore(pmsDays, record.PeriodStart, pmsWindowDays)
		}
	}

	predictedPeriod := make(map[string]bool)
	ovulationDays := make(map[string]bool)
	fertileDays := make(map[string]bool)

	if prediction != nil {
		projectPredictedCycles(prediction, settings, lastDay, predictedPeriod, ovulationDays, fertileDays, pmsDays, pmsWindowDays)
	}

	classified := make(map[string]DayClassification)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyLayout)
		_, hasLog := history.LogByDate(day)

		isPeriod := loggedPeriod[key]
		isOvulation := ovulationDays[key]
		classified[key] = DayClassification{
			IsPeriodDay:       isPeriod,
			IsPredictedPeriod: predictedPeriod[key] && !isPeriod,
			IsOvulationDay:    isOvulation,
			IsFertileDay:      fertileDays[key] && !isOvulation,
			IsPmsDay:          pmsDays[key],
			HasLog:            hasLog,
		}
	}

	return classified
}

func projectPredictedCycles(prediction *CyclePrediction, settings models.CycleSettings, lastDay time.Time, predictedPeriod, ovulationDays, fertileDays, pmsDays map[string]bool, pmsWindowDays int) {
	cycleLength := int(math.Round(prediction.AverageCycleLength))
	if cycleLength <= 0 {
		cycleLength = defaultCycleLength(settings)
	}
	periodLength := int(math.Round(prediction.AveragePeriodLength))
	if periodLength <= 0 {
		periodLength = defaultPeriodLength(settings)
	}
	lutealDays := settings.LutealPhaseLength
	if lutealDays <= 0 {
		lutealDays = models.DefaultLutealPhaseDays
	}

	// The running cycle's own ovulation sits ahead of the next period
	// start; reanchor it here so toggles only hide their own facet.
	markOvulationWindow(dateOnly(prediction.NextPeriodDate).AddDate(0, 0, -lutealDays), settings, ovulationDays, fertileDays)

	for cycleStart := dateOnly(prediction.NextPeriodDate); !cycleStart.After(lastDay); cycleStart = cycleStart.AddDate(0, 0, cycleLength) {
		for offset := 0; offset < periodLength; offset++ {
			predictedPeriod[cycleStart.AddDate(0, 0, offset).Format(dayKeyLayout)] = true
		}
		if settings.TrackPMS {
			markDaysBefore(pmsDays, cycleStart, pmsWindowDays)
		}

		markOvulationWindow(cycleStart.AddDate(0, 0, cycleLength-lutealDays), settings, ovulationDays, fertileDays)
	}
}

func markOvulationWindow(ovulationDate time.Time, settings models.CycleSettings, ovulationDays, fertileDays map[string]bool) {
	if settings.TrackOvulation {
		ovulationDays[ovulationDate.Format(dayKeyLayout)] = true
	}
	if !settings.TrackFertileWindow {
		return
	}
	for day := ovulationDate.AddDate(0, 0, -5); !day.After(ovulationDate.AddDate(0, 0, 1)); day = day.AddDate(0, 0, 1) {
		fertileDays[day.Format(dayKeyLayout)] = true
	}
}

func markDaysBefore(days map[string]bool, start time.Time, count int) {
	for offset := 1; offset <= count; offset++ {
		days[start.AddDate(0, 0, -offset).Format(dayKeyLayout)] = true
	}
}
