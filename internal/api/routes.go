package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/api/health", handler.Health)

	cycles := app.Group("/api/cycles")
	cycles.Get("", handler.GetCycles)
	cycles.Get("/active", handler.GetActiveCycle)
	cycles.Post("/start", handler.StartPeriod)
	cycles.Post("/end", handler.EndPeriod)
	cycles.Delete("/:id", handler.DeleteCycle)

	days := app.Group("/api/days")
	days.Get("", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Put("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	app.Get("/api/dashboard", handler.GetDashboard)
	app.Get("/api/calendar/:month", handler.GetCalendarMonth)
	app.Get("/api/stats", handler.GetStats)

	settings := app.Group("/api/settings")
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)

	app.Get("/api/export", handler.ExportData)
}
