package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

var (
	ErrInvalidFlowLevel    = errors.New("invalid flow level")
	ErrInvalidMood         = errors.New("invalid mood")
	ErrInvalidPainLevel    = errors.New("invalid pain level")
	ErrInvalidEnergyLevel  = errors.New("invalid energy level")
	ErrInvalidSleepQuality = errors.New("invalid sleep quality")
	ErrUnknownSymptom      = errors.New("unknown symptom tag")
	ErrDayEntrySaveFailed  = errors.New("save day entry failed")
	ErrDayEntryLoadFailed  = errors.New("load day entry failed")
	ErrDeleteDayFailed     = errors.New("delete day failed")
)

type DayEntryInput struct {
	FlowLevel    string
	Mood         string
	PainLevel    *int
	EnergyLevel  *int
	Symptoms     []string
	SleepQuality string
	Notes        string
}

type DayLogRepository interface {
	ListAll() ([]models.DailyLog, error)
	ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyLog, error)
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
	DeleteByDayRange(dayStart time.Time, dayEnd time.Time) error
}

type DayService struct {
	logs     DayLogRepository
	location *time.Location
}

func NewDayService(logs DayLogRepository, location *time.Location) *DayService {
	if location == nil {
		location = time.UTC
	}
	return &DayService{logs: logs, location: location}
}

func (service *DayService) FetchAllLogs() ([]models.DailyLog, error) {
	return service.logs.ListAll()
}

func (service *DayService) FetchLogsForRange(from time.Time, to time.Time) ([]models.DailyLog, error) {
	fromStart, _ := DayRange(from, service.location)
	_, toEnd := DayRange(to, service.location)
	return service.logs.ListRange(&fromStart, &toEnd)
}

func (service *DayService) FetchLogsForOptionalRange(from *time.Time, to *time.Time) ([]models.DailyLog, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, service.location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, service.location)
		toEnd = &end
	}
	return service.logs.ListRange(fromStart, toEnd)
}

// FetchLog returns the entry for a date, or an empty unsaved one when the
// date has never been logged.
func (service *DayService) FetchLog(day time.Time) (models.DailyLog, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.logs.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrDayEntryLoadFailed, err)
	}
	if !found {
		return models.DailyLog{
			Date:      dayStart,
			FlowLevel: models.FlowNone,
			Symptoms:  []string{},
		}, nil
	}
	return entry, nil
}

// UpsertLog creates or updates the single entry for a date.
func (service *DayService) UpsertLog(day time.Time, input DayEntryInput) (models.DailyLog, error) {
	normalized, err := normalizeDayEntryInput(input)
	if err != nil {
		return models.DailyLog{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.logs.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrDayEntryLoadFailed, err)
	}
	if !found {
		entry = models.DailyLog{Date: dayStart}
	}

	entry.FlowLevel = normalized.FlowLevel
	entry.Mood = normalized.Mood
	entry.PainLevel = normalized.PainLevel
	entry.EnergyLevel = normalized.EnergyLevel
	entry.Symptoms = normalized.Symptoms
	entry.SleepQuality = normalized.SleepQuality
	entry.Notes = normalized.Notes

	if !found {
		if err := service.logs.Create(&entry); err != nil {
			return models.DailyLog{}, fmt.Errorf("%w: %v", ErrDayEntrySaveFailed, err)
		}
		return entry, nil
	}
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("%w: %v", ErrDayEntrySaveFailed, err)
	}
	return entry, nil
}

func (service *DayService) DeleteLog(day time.Time) error {
	dayStart, dayEnd := DayRange(day, service.location)
	if err := service.logs.DeleteByDayRange(dayStart, dayEnd); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteDayFailed, err)
	}
	return nil
}

func normalizeDayEntryInput(input DayEntryInput) (DayEntryInput, error) {
	input.FlowLevel = strings.TrimSpace(input.FlowLevel)
	input.Mood = strings.TrimSpace(input.Mood)
	input.SleepQuality = strings.TrimSpace(input.SleepQuality)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.FlowLevel == "" {
		input.FlowLevel = models.FlowNone
	}
	if !models.IsValidFlowLevel(input.FlowLevel) {
		return DayEntryInput{}, ErrInvalidFlowLevel
	}
	if !models.IsValidMood(input.Mood) {
		return DayEntryInput{}, ErrInvalidMood
	}
	if !models.IsValidSleepQuality(input.SleepQuality) {
		return DayEntryInput{}, ErrInvalidSleepQuality
	}
	if input.PainLevel != nil && !models.IsValidPainLevel(*input.PainLevel) {
		return DayEntryInput{}, ErrInvalidPainLevel
	}
	if input.EnergyLevel != nil && !models.IsValidEnergyLevel(*input.EnergyLevel) {
		return DayEntryInput{}, ErrInvalidEnergyLevel
	}

	normalizedSymptoms, err := normalizeSymptomTags(input.Symptoms)
	if err != nil {
		return DayEntryInput{}, err
	}
	input.Symptoms = normalizedSymptoms
	return input, nil
}

// normalizeSymptomTags deduplicates tags and orders them by the catalog
// declaration order. Unknown tags are rejected.
func normalizeSymptomTags(tags []string) ([]string, error) {
	unique := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if !models.IsKnownSymptom(tag) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSymptom, tag)
		}
		unique[tag] = struct{}{}
	}

	order := models.SymptomOrderMap()
	normalized := make([]string, 0, len(unique))
	for tag := range unique {
		normalized = append(normalized, tag)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return order[normalized[i]] < order[normalized[j]]
	})
	return normalized, nil
}
