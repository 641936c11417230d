package db

import "gorm.io/gorm"

type Repositories struct {
	Cycles    *CycleRepository
	DailyLogs *DailyLogRepository
	Settings  *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Cycles:    NewCycleRepository(database),
		DailyLogs: NewDailyLogRepository(database),
		Settings:  NewSettingsRepository(database),
	}
}
