package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

// CycleHistory is an immutable snapshot of everything the cycle engine
// computes from. Build it with NormalizeHistory so downstream code can rely
// on ordering and non-overlap.
type CycleHistory struct {
	Cycles []models.CycleRecord
	Logs   []models.DailyLog
}

// NormalizeHistory sorts cycle records by period start and recovers from
// malformed input instead of failing: records overlapping their predecessor
// are merged into it (earliest start, latest known end, heavier flow wins)
// and duplicate daily-log dates collapse to the newest row.
func NormalizeHistory(cycles []models.CycleRecord, logs []models.DailyLog) CycleHistory {
	sortedCycles := make([]models.CycleRecord, 0, len(cycles))
	sortedCycles = append(sortedCycles, cycles...)
	sort.SliceStable(sortedCycles, func(i, j int) bool {
		if sortedCycles[i].PeriodStart.Equal(sortedCycles[j].PeriodStart) {
			return sortedCycles[i].ID < sortedCycles[j].ID
		}
		return sortedCycles[i].PeriodStart.Before(sortedCycles[j].PeriodStart)
	})

	merged := make([]models.CycleRecord, 0, len(sortedCycles))
	for _, record := range sortedCycles {
		record.PeriodStart = dateOnly(record.PeriodStart)
		if record.PeriodEnd != nil {
			end := dateOnly(*record.PeriodEnd)
			record.PeriodEnd = &end
		}

		if len(merged) == 0 {
			merged = append(merged, record)
			continue
		}

		previous := &merged[len(merged)-1]
		overlaps := record.PeriodStart.Before(previousSpanEnd(*previous)) ||
			record.PeriodStart.Equal(previous.PeriodStart)
		if !overlaps {
			merged = append(merged, record)
			continue
		}

		mergeCycleRecords(previous, record)
	}

	latestLogByDate := make(map[string]models.DailyLog, len(logs))
	for _, entry := range logs {
		entry.Date = dateOnly(entry.Date)
		key := entry.Date.Format(dayKeyLayout)
		existing, exists := latestLogByDate[key]
		if !exists || entry.UpdatedAt.After(existing.UpdatedAt) || (entry.UpdatedAt.Equal(existing.UpdatedAt) && entry.ID > existing.ID) {
			latestLogByDate[key] = entry
		}
	}

	sortedLogs := make([]models.DailyLog, 0, len(latestLogByDate))
	for _, entry := range latestLogByDate {
		sortedLogs = append(sortedLogs, entry)
	}
	sort.Slice(sortedLogs, func(i, j int) bool {
		return sortedLogs[i].Date.Before(sortedLogs[j].Date)
	})

	return CycleHistory{Cycles: merged, Logs: sortedLogs}
}

// previousSpanEnd is the last day a record is known to cover. An active
// record covers only its start day for overlap purposes.
func previousSpanEnd(record models.CycleRecord) time.Time {
	if record.PeriodEnd != nil {
		return *record.PeriodEnd
	}
	return record.PeriodStart
}

func mergeCycleRecords(target *models.CycleRecord, other models.CycleRecord) {
	if other.PeriodStart.Before(target.PeriodStart) {
		target.PeriodStart = other.PeriodStart
	}
	switch {
	case target.PeriodEnd == nil && other.PeriodEnd != nil:
		end := *other.PeriodEnd
		target.PeriodEnd = &end
	case target.PeriodEnd != nil && other.PeriodEnd != nil && other.PeriodEnd.After(*target.PeriodEnd):
		end := *other.PeriodEnd
		target.PeriodEnd = &end
	}
	if models.FlowIntensityRank(other.FlowIntensity) > models.FlowIntensityRank(target.FlowIntensity) {
		target.FlowIntensity = other.FlowIntensity
	}
	if target.Notes == "" {
		target.Notes = other.Notes
	}
}

// LastCycle returns the most recent record by period start.
func (history CycleHistory) LastCycle() (models.CycleRecord, bool) {
	if len(history.Cycles) == 0 {
		return models.CycleRecord{}, false
	}
	return history.Cycles[len(history.Cycles)-1], true
}

// CompletedCycleLengths lists day counts from each period start to the next
// one, oldest first. The most recent record never contributes a length.
func (history CycleHistory) CompletedCycleLengths() []int {
	if len(history.Cycles) < 2 {
		return nil
	}
	lengths := make([]int, 0, len(history.Cycles)-1)
	for i := 1; i < len(history.Cycles); i++ {
		lengths = append(lengths, daysBetween(history.Cycles[i-1].PeriodStart, history.Cycles[i].PeriodStart))
	}
	return lengths
}

// KnownPeriodLengths lists period lengths of closed records, oldest first.
// Active records are excluded until closed.
func (history CycleHistory) KnownPeriodLengths() []int {
	lengths := make([]int, 0, len(history.Cycles))
	for _, record := range history.Cycles {
		if length, known := record.PeriodLength(); known {
			lengths = append(lengths, length)
		}
	}
	return lengths
}

// LogByDate returns the log entry for a calendar day, if any.
func (history CycleHistory) LogByDate(day time.Time) (models.DailyLog, bool) {
	key := dateOnly(day).Format(dayKeyLayout)
	for _, entry := range history.Logs {
		if entry.Date.Format(dayKeyLayout) == key {
			return entry, true
		}
	}
	return models.DailyLog{}, false
}
