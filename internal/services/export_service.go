package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Period",
	"Flow",
	"Mood",
	"Pain",
	"Energy",
	"Sleep",
	"Symptoms",
	"Notes",
}

type ExportLogReader interface {
	ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyLog, error)
}

type ExportCycleReader interface {
	ListAll() ([]models.CycleRecord, error)
}

type ExportService struct {
	logs     ExportLogReader
	cycles   ExportCycleReader
	location *time.Location
}

type ExportJSONEntry struct {
	Date         string   `json:"date"`
	Period       bool     `json:"period"`
	Flow         string   `json:"flow"`
	Mood         string   `json:"mood"`
	PainLevel    *int     `json:"pain_level"`
	EnergyLevel  *int     `json:"energy_level"`
	SleepQuality string   `json:"sleep_quality"`
	Symptoms     []string `json:"symptoms"`
	Notes        string   `json:"notes"`
}

type ExportJSONCycle struct {
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     *string `json:"period_end"`
	FlowIntensity string  `json:"flow_intensity"`
	Notes         string  `json:"notes"`
}

type ExportJSONDocument struct {
	ExportedAt string            `json:"exported_at"`
	Cycles     []ExportJSONCycle `json:"cycles"`
	Days       []ExportJSONEntry `json:"days"`
}

func NewExportService(logs ExportLogReader, cycles ExportCycleReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{logs: logs, cycles: cycles, location: location}
}

func (service *ExportService) loadData(from *time.Time, to *time.Time) ([]models.DailyLog, []models.CycleRecord, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start := DateAtLocation(*from, service.location)
		fromStart = &start
	}
	if to != nil {
		end := DateAtLocation(*to, service.location).AddDate(0, 0, 1)
		toEnd = &end
	}

	logs, err := service.logs.ListRange(fromStart, toEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("load logs for export: %w", err)
	}
	cycles, err := service.cycles.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load cycles for export: %w", err)
	}
	return logs, cycles, nil
}

func (service *ExportService) BuildCSV(from *time.Time, to *time.Time) ([]byte, error) {
	logs, cycles, err := service.loadData(from, to)
	if err != nil {
		return nil, err
	}
	history := NormalizeHistory(cycles, logs)

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range history.Logs {
		row := []string{
			entry.Date.Format(exportDateLayout),
			strconv.FormatBool(dayFallsInLoggedPeriod(entry.Date, history.Cycles)),
			entry.FlowLevel,
			entry.Mood,
			formatOptionalInt(entry.PainLevel),
			formatOptionalInt(entry.EnergyLevel),
			entry.SleepQuality,
			strings.Join(entry.Symptoms, ";"),
			entry.Notes,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buffer.Bytes(), nil
}

func (service *ExportService) BuildJSON(from *time.Time, to *time.Time, now time.Time) ([]byte, error) {
	logs, cycles, err := service.loadData(from, to)
	if err != nil {
		return nil, err
	}
	history := NormalizeHistory(cycles, logs)

	document := ExportJSONDocument{
		ExportedAt: DateAtLocation(now, service.location).Format(exportDateLayout),
		Cycles:     make([]ExportJSONCycle, 0, len(history.Cycles)),
		Days:       make([]ExportJSONEntry, 0, len(history.Logs)),
	}

	for _, record := range history.Cycles {
		cycle := ExportJSONCycle{
			PeriodStart:   record.PeriodStart.Format(exportDateLayout),
			FlowIntensity: record.FlowIntensity,
			Notes:         record.Notes,
		}
		if record.PeriodEnd != nil {
			end := record.PeriodEnd.Format(exportDateLayout)
			cycle.PeriodEnd = &end
		}
		document.Cycles = append(document.Cycles, cycle)
	}

	for _, entry := range history.Logs {
		symptoms := entry.Symptoms
		if symptoms == nil {
			symptoms = []string{}
		}
		document.Days = append(document.Days, ExportJSONEntry{
			Date:         entry.Date.Format(exportDateLayout),
			Period:       dayFallsInLoggedPeriod(entry.Date, history.Cycles),
			Flow:         entry.FlowLevel,
			Mood:         entry.Mood,
			PainLevel:    entry.PainLevel,
			EnergyLevel:  entry.EnergyLevel,
			SleepQuality: entry.SleepQuality,
			Symptoms:     symptoms,
			Notes:        entry.Notes,
		})
	}

	encoded, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export json: %w", err)
	}
	return encoded, nil
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func dayFallsInLoggedPeriod(day time.Time, cycles []models.CycleRecord) bool {
	day = dateOnly(day)
	for _, record := range cycles {
		spanEnd := record.PeriodStart
		if record.PeriodEnd != nil {
			spanEnd = *record.PeriodEnd
		}
		if betweenInclusive(day, record.PeriodStart, spanEnd) {
			return true
		}
	}
	return false
}
