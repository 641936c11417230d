package services

import (
	"sort"

	"github.com/terraincognita07/lunara/internal/models"
)

const (
	RegularityVeryRegular     = "Very Regular"
	RegularityRegular         = "Regular"
	RegularityIrregular       = "Irregular"
	RegularityHighlyIrregular = "Highly Irregular"
)

// topSymptomCount truncates the ranked symptom list.
const topSymptomCount = 5

type SymptomCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CycleStatistics struct {
	AverageCycleLength  float64        `json:"average_cycle_length"`
	AveragePeriodLength float64        `json:"average_period_length"`
	ShortestCycle       int            `json:"shortest_cycle"`
	LongestCycle        int            `json:"longest_cycle"`
	CycleRegularity     string         `json:"cycle_regularity"`
	MostCommonSymptoms  []SymptomCount `json:"most_common_symptoms"`
	AveragePainLevel    float64        `json:"average_pain_level"`
	TotalCyclesTracked  int            `json:"total_cycles_tracked"`
}

// Aggregate summarizes the full history. Unlike Predict it averages over
// every completed cycle, not just the recent window. Returns nil with fewer
// than two completed cycles.
func Aggregate(history CycleHistory, settings models.CycleSettings) *CycleStatistics {
	lengths := history.CompletedCycleLengths()
	if len(lengths) < 2 {
		return nil
	}

	shortest := lengths[0]
	longest := lengths[0]
	for _, length := range lengths[1:] {
		if length < shortest {
			shortest = length
		}
		if length > longest {
			longest = length
		}
	}

	stats := &CycleStatistics{
		AverageCycleLength: averageInts(lengths),
		ShortestCycle:      shortest,
		LongestCycle:       longest,
		CycleRegularity:    ClassifyRegularity(longest - shortest),
		TotalCyclesTracked: len(history.Cycles),
	}

	if periodLengths := history.KnownPeriodLengths(); len(periodLengths) > 0 {
		stats.AveragePeriodLength = averageInts(periodLengths)
	}

	periodLogs := periodAssociatedLogs(history, settings)
	stats.MostCommonSymptoms = rankSymptoms(periodLogs)
	stats.AveragePainLevel = averagePainLevel(periodLogs)

	return stats
}

func ClassifyRegularity(spread int) string {
	switch {
	case spread <= 3:
		return RegularityVeryRegular
	case spread <= 7:
		return RegularityRegular
	case spread <= 14:
		return RegularityIrregular
	default:
		return RegularityHighlyIrregular
	}
}

// periodAssociatedLogs selects daily logs inside a cycle's menstrual span or
// its PMS lookback window before the period start.
func periodAssociatedLogs(history CycleHistory, settings models.CycleSettings) []models.DailyLog {
	pmsWindowDays := settings.PMSWindowDays
	if pmsWindowDays <= 0 {
		pmsWindowDays = models.DefaultPMSWindowDays
	}
	fallbackPeriodDays := defaultPeriodLength(settings)

	selected := make([]models.DailyLog, 0, len(history.Logs))
	for _, entry := range history.Logs {
		if logFallsInPeriodWindow(entry, history.Cycles, pmsWindowDays, fallbackPeriodDays) {
			selected = append(selected, entry)
		}
	}
	return selected
}

func logFallsInPeriodWindow(entry models.DailyLog, cycles []models.CycleRecord, pmsWindowDays int, fallbackPeriodDays int) bool {
	day := dateOnly(entry.Date)
	for _, record := range cycles {
		spanEnd := record.PeriodStart
		if record.PeriodEnd != nil {
			spanEnd = *record.PeriodEnd
		} else if fallbackPeriodDays > 1 {
			spanEnd = record.PeriodStart.AddDate(0, 0, fallbackPeriodDays-1)
		}
		if betweenInclusive(day, record.PeriodStart, spanEnd) {
			return true
		}

		pmsStart := record.PeriodStart.AddDate(0, 0, -pmsWindowDays)
		if betweenInclusive(day, pmsStart, record.PeriodStart.AddDate(0, 0, -1)) {
			return true
		}
	}
	return false
}

func rankSymptoms(logs []models.DailyLog) []SymptomCount {
	counts := make(map[string]int)
	for _, entry := range logs {
		for _, symptom := range entry.Symptoms {
			counts[symptom]++
		}
	}
	if len(counts) == 0 {
		return []SymptomCount{}
	}

	ranked := make([]SymptomCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, SymptomCount{Name: name, Count: count})
	}

	declarationOrder := models.SymptomOrderMap()
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		leftOrder, leftKnown := declarationOrder[ranked[i].Name]
		rightOrder, rightKnown := declarationOrder[ranked[j].Name]
		switch {
		case leftKnown && rightKnown:
			return leftOrder < rightOrder
		case leftKnown != rightKnown:
			return leftKnown
		default:
			return ranked[i].Name < ranked[j].Name
		}
	})

	if len(ranked) > topSymptomCount {
		ranked = ranked[:topSymptomCount]
	}
	return ranked
}

func averagePainLevel(logs []models.DailyLog) float64 {
	var total int
	var count int
	for _, entry := range logs {
		if entry.PainLevel == nil {
			continue
		}
		total += *entry.PainLevel
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
