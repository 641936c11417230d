package db

import (
	"github.com/terraincognita07/lunara/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) Find() (models.CycleSettings, bool, error) {
	settings := models.CycleSettings{}
	result := repo.database.Order("id ASC").Limit(1).Find(&settings)
	if result.Error != nil {
		return models.CycleSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleSettings{}, false, nil
	}
	return settings, true, nil
}

func (repo *SettingsRepository) Create(settings *models.CycleSettings) error {
	return repo.database.Create(settings).Error
}

func (repo *SettingsRepository) Save(settings *models.CycleSettings) error {
	return repo.database.Save(settings).Error
}
