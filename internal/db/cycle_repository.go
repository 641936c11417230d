package db

import (
	"time"

	"github.com/terraincognita07/lunara/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListAll() ([]models.CycleRecord, error) {
	records := make([]models.CycleRecord, 0)
	if err := repo.database.Order("period_start ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRepository) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.CycleRecord, error) {
	query := repo.database.Model(&models.CycleRecord{})
	if fromStart != nil {
		query = query.Where("period_start >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("period_start < ?", *toEnd)
	}

	records := make([]models.CycleRecord, 0)
	if err := query.Order("period_start ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRepository) FindByID(recordID uint) (models.CycleRecord, bool, error) {
	record := models.CycleRecord{}
	result := repo.database.Limit(1).Find(&record, recordID)
	if result.Error != nil {
		return models.CycleRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *CycleRepository) FindActive() (models.CycleRecord, bool, error) {
	record := models.CycleRecord{}
	result := repo.database.
		Where("period_end IS NULL").
		Order("period_start DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.CycleRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *CycleRepository) FindLatest() (models.CycleRecord, bool, error) {
	record := models.CycleRecord{}
	result := repo.database.
		Order("period_start DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.CycleRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *CycleRepository) Create(record *models.CycleRecord) error {
	return repo.database.Create(record).Error
}

func (repo *CycleRepository) Save(record *models.CycleRecord) error {
	return repo.database.Save(record).Error
}

func (repo *CycleRepository) Delete(recordID uint) error {
	return repo.database.Delete(&models.CycleRecord{}, recordID).Error
}
