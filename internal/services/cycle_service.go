package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

var (
	ErrInvalidFlowIntensity  = errors.New("invalid flow intensity")
	ErrPeriodAlreadyActive   = errors.New("a period is already active for this date")
	ErrPeriodStartBeforePrev = errors.New("period start precedes the previous cycle")
	ErrNoActivePeriod        = errors.New("no active period to end")
	ErrPeriodEndBeforeStart  = errors.New("period end precedes its start")
	ErrCycleNotFound         = errors.New("cycle not found")
	ErrCycleSaveFailed       = errors.New("save cycle failed")
	ErrCycleDeleteFailed     = errors.New("delete cycle failed")
)

type CycleRecordRepository interface {
	ListAll() ([]models.CycleRecord, error)
	FindByID(recordID uint) (models.CycleRecord, bool, error)
	FindActive() (models.CycleRecord, bool, error)
	FindLatest() (models.CycleRecord, bool, error)
	Create(record *models.CycleRecord) error
	Save(record *models.CycleRecord) error
	Delete(recordID uint) error
}

type CycleService struct {
	cycles   CycleRecordRepository
	location *time.Location
}

func NewCycleService(cycles CycleRecordRepository, location *time.Location) *CycleService {
	if location == nil {
		location = time.UTC
	}
	return &CycleService{cycles: cycles, location: location}
}

func (service *CycleService) ListCycles() ([]models.CycleRecord, error) {
	return service.cycles.ListAll()
}

func (service *CycleService) ActiveCycle() (models.CycleRecord, bool, error) {
	return service.cycles.FindActive()
}

// StartPeriod opens a new cycle record. A still-active record is closed at
// the day before the new start (superseded); a start before the latest known
// record is rejected so cycles never overlap.
func (service *CycleService) StartPeriod(day time.Time, flowIntensity string, notes string) (models.CycleRecord, error) {
	if !models.IsValidFlowIntensity(flowIntensity) {
		return models.CycleRecord{}, ErrInvalidFlowIntensity
	}
	startDay := DateAtLocation(day, service.location)

	latest, hasLatest, err := service.cycles.FindLatest()
	if err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: %v", ErrCycleSaveFailed, err)
	}

	if hasLatest {
		if startDay.Before(latestSpanFloor(latest)) {
			return models.CycleRecord{}, ErrPeriodStartBeforePrev
		}
		if latest.IsActive() {
			if sameDay(latest.PeriodStart, startDay) {
				return models.CycleRecord{}, ErrPeriodAlreadyActive
			}
			supersededEnd := startDay.AddDate(0, 0, -1)
			if supersededEnd.Before(latest.PeriodStart) {
				supersededEnd = latest.PeriodStart
			}
			latest.PeriodEnd = &supersededEnd
			if err := service.cycles.Save(&latest); err != nil {
				return models.CycleRecord{}, fmt.Errorf("%w: %v", ErrCycleSaveFailed, err)
			}
		}
	}

	record := models.CycleRecord{
		PeriodStart:   startDay,
		FlowIntensity: flowIntensity,
		Notes:         notes,
	}
	if err := service.cycles.Create(&record); err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: %v", ErrCycleSaveFailed, err)
	}
	return record, nil
}

// EndPeriod closes the active cycle record at the given day.
func (service *CycleService) EndPeriod(day time.Time) (models.CycleRecord, error) {
	endDay := DateAtLocation(day, service.location)

	active, found, err := service.cycles.FindActive()
	if err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: %v", ErrCycleSaveFailed, err)
	}
	if !found {
		return models.CycleRecord{}, ErrNoActivePeriod
	}
	if endDay.Before(active.PeriodStart) {
		return models.CycleRecord{}, ErrPeriodEndBeforeStart
	}

	active.PeriodEnd = &endDay
	if err := service.cycles.Save(&active); err != nil {
		return models.CycleRecord{}, fmt.Errorf("%w: %v", ErrCycleSaveFailed, err)
	}
	return active, nil
}

func (service *CycleService) DeleteCycle(recordID uint) error {
	_, found, err := service.cycles.FindByID(recordID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCycleDeleteFailed, err)
	}
	if !found {
		return ErrCycleNotFound
	}
	if err := service.cycles.Delete(recordID); err != nil {
		return fmt.Errorf("%w: %v", ErrCycleDeleteFailed, err)
	}
	return nil
}

// latestSpanFloor is the earliest day a new period may start on: the latest
// record's end when closed, its start while active.
func latestSpanFloor(latest models.CycleRecord) time.Time {
	if latest.PeriodEnd != nil {
		return *latest.PeriodEnd
	}
	return latest.PeriodStart
}
