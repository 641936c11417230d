package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

type DashboardCycleReader interface {
	ListAll() ([]models.CycleRecord, error)
}

type DashboardLogReader interface {
	ListAll() ([]models.DailyLog, error)
}

type DashboardSettingsLoader interface {
	Load() (models.CycleSettings, error)
}

// DashboardService reloads a fresh history snapshot and reruns the pure
// computations on every call; derived state is never cached.
type DashboardService struct {
	cycles   DashboardCycleReader
	logs     DashboardLogReader
	settings DashboardSettingsLoader
	location *time.Location
}

type DashboardView struct {
	Phase      PhaseSnapshot    `json:"phase"`
	Prediction *CyclePrediction `json:"prediction"`
}

func NewDashboardService(cycles DashboardCycleReader, logs DashboardLogReader, settings DashboardSettingsLoader, location *time.Location) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{
		cycles:   cycles,
		logs:     logs,
		settings: settings,
		location: location,
	}
}

func (service *DashboardService) LoadSnapshot() (CycleHistory, models.CycleSettings, error) {
	settings, err := service.settings.Load()
	if err != nil {
		return CycleHistory{}, models.CycleSettings{}, err
	}
	cycles, err := service.cycles.ListAll()
	if err != nil {
		return CycleHistory{}, models.CycleSettings{}, fmt.Errorf("load cycle records: %w", err)
	}
	logs, err := service.logs.ListAll()
	if err != nil {
		return CycleHistory{}, models.CycleSettings{}, fmt.Errorf("load daily logs: %w", err)
	}
	return NormalizeHistory(cycles, logs), settings, nil
}

func (service *DashboardService) BuildDashboard(now time.Time) (DashboardView, error) {
	history, settings, err := service.LoadSnapshot()
	if err != nil {
		return DashboardView{}, err
	}

	today := DateAtLocation(now, service.location)
	return DashboardView{
		Phase:      CurrentPhase(history, settings, today),
		Prediction: Predict(history, settings, today),
	}, nil
}

func (service *DashboardService) BuildStatistics() (*CycleStatistics, error) {
	history, settings, err := service.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	return Aggregate(history, settings), nil
}

func (service *DashboardService) BuildCalendarMonth(monthStart time.Time, now time.Time) (map[string]DayClassification, error) {
	history, settings, err := service.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	today := DateAtLocation(now, service.location)
	prediction := Predict(history, settings, today)
	return ClassifyMonth(DateAtLocation(monthStart, service.location), history, prediction, settings), nil
}
