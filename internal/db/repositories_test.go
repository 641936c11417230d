package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/lunara/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "lunara-repo.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func testDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func TestCycleRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewCycleRepository(openTestDatabase(t))

	if _, found, err := repo.FindLatest(); err != nil || found {
		t.Fatalf("empty table must report no latest record, got found=%v err=%v", found, err)
	}

	first := models.CycleRecord{PeriodStart: testDay(t, "2024-01-01"), FlowIntensity: models.FlowMedium}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	second := models.CycleRecord{PeriodStart: testDay(t, "2024-01-29")}
	if err := repo.Create(&second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	latest, found, err := repo.FindLatest()
	if err != nil || !found {
		t.Fatalf("find latest: found=%v err=%v", found, err)
	}
	if latest.ID != second.ID {
		t.Fatalf("expected latest record %d, got %d", second.ID, latest.ID)
	}

	active, found, err := repo.FindActive()
	if err != nil || !found {
		t.Fatalf("find active: found=%v err=%v", found, err)
	}
	if active.ID != first.ID && active.ID != second.ID {
		t.Fatalf("unexpected active record %+v", active)
	}

	end := testDay(t, "2024-01-05")
	first.PeriodEnd = &end
	if err := repo.Save(&first); err != nil {
		t.Fatalf("save closed record: %v", err)
	}

	active, found, err = repo.FindActive()
	if err != nil || !found {
		t.Fatalf("find active after close: found=%v err=%v", found, err)
	}
	if active.ID != second.ID {
		t.Fatalf("expected the open record to be active, got %+v", active)
	}

	records, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(records) != 2 || !records[0].PeriodStart.Before(records[1].PeriodStart) {
		t.Fatalf("expected 2 records ordered by start, got %+v", records)
	}

	if _, found, err := repo.FindByID(second.ID); err != nil || !found {
		t.Fatalf("find by id: found=%v err=%v", found, err)
	}
	if _, found, err := repo.FindByID(9999); err != nil || found {
		t.Fatalf("missing id must report not found, got found=%v err=%v", found, err)
	}

	if err := repo.Delete(second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	records, err = repo.ListAll()
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after delete, got %d", len(records))
	}
}

func TestDailyLogRepositoryDayRangeQueries(t *testing.T) {
	t.Parallel()

	repo := NewDailyLogRepository(openTestDatabase(t))

	entry := models.DailyLog{
		Date:      testDay(t, "2024-02-10"),
		FlowLevel: models.FlowLight,
		Symptoms:  []string{"cramps", "headache"},
	}
	if err := repo.Create(&entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	dayStart := testDay(t, "2024-02-10")
	dayEnd := dayStart.AddDate(0, 0, 1)

	loaded, found, err := repo.FindByDayRange(dayStart, dayEnd)
	if err != nil || !found {
		t.Fatalf("find by day range: found=%v err=%v", found, err)
	}
	if len(loaded.Symptoms) != 2 || loaded.Symptoms[0] != "cramps" {
		t.Fatalf("symptoms did not survive the round trip: %+v", loaded.Symptoms)
	}

	if _, found, err := repo.FindByDayRange(dayEnd, dayEnd.AddDate(0, 0, 1)); err != nil || found {
		t.Fatalf("adjacent day must miss, got found=%v err=%v", found, err)
	}

	logs, err := repo.ListRange(&dayStart, &dayEnd)
	if err != nil || len(logs) != 1 {
		t.Fatalf("list range: len=%d err=%v", len(logs), err)
	}

	if err := repo.DeleteByDayRange(dayStart, dayEnd); err != nil {
		t.Fatalf("delete by day range: %v", err)
	}
	if _, found, _ := repo.FindByDayRange(dayStart, dayEnd); found {
		t.Fatal("entry survived delete")
	}
}

func TestSettingsRepositorySingleRow(t *testing.T) {
	t.Parallel()

	repo := NewSettingsRepository(openTestDatabase(t))

	if _, found, err := repo.Find(); err != nil || found {
		t.Fatalf("empty table must report no settings, got found=%v err=%v", found, err)
	}

	settings := models.DefaultCycleSettings()
	if err := repo.Create(&settings); err != nil {
		t.Fatalf("create settings: %v", err)
	}

	loaded, found, err := repo.Find()
	if err != nil || !found {
		t.Fatalf("find settings: found=%v err=%v", found, err)
	}
	if loaded.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("unexpected settings row: %+v", loaded)
	}

	loaded.AverageCycleLength = 31
	if err := repo.Save(&loaded); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	reloaded, _, err := repo.Find()
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if reloaded.AverageCycleLength != 31 {
		t.Fatalf("update lost: %+v", reloaded)
	}
}
