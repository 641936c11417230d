package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func makeCycle(t *testing.T, id uint, start string, end string) models.CycleRecord {
	t.Helper()
	record := models.CycleRecord{
		ID:          id,
		PeriodStart: mustParseDay(t, start),
	}
	if end != "" {
		endDay := mustParseDay(t, end)
		record.PeriodEnd = &endDay
	}
	return record
}

func makeSymptomLog(t *testing.T, date string, symptoms ...string) models.DailyLog {
	t.Helper()
	return models.DailyLog{
		Date:      mustParseDay(t, date),
		FlowLevel: models.FlowNone,
		Symptoms:  symptoms,
	}
}

func intPtr(value int) *int {
	return &value
}
