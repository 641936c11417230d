package api

import (
	"time"

	"github.com/terraincognita07/lunara/internal/db"
	"github.com/terraincognita07/lunara/internal/services"
)

type Handler struct {
	cycles    *services.CycleService
	days      *services.DayService
	settings  *services.SettingsService
	dashboard *services.DashboardService
	export    *services.ExportService
	location  *time.Location
}

func NewHandler(repos *db.Repositories, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	settingsService := services.NewSettingsService(repos.Settings)
	return &Handler{
		cycles:    services.NewCycleService(repos.Cycles, location),
		days:      services.NewDayService(repos.DailyLogs, location),
		settings:  settingsService,
		dashboard: services.NewDashboardService(repos.Cycles, repos.DailyLogs, settingsService, location),
		export:    services.NewExportService(repos.DailyLogs, repos.Cycles, location),
		location:  location,
	}
}
