package models

import (
	"testing"
	"time"
)

func TestCycleRecordPeriodLength(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	active := CycleRecord{PeriodStart: start}
	if !active.IsActive() {
		t.Fatal("record without an end must be active")
	}
	if _, known := active.PeriodLength(); known {
		t.Fatal("active record must not report a period length")
	}

	end := start.AddDate(0, 0, 4)
	closed := CycleRecord{PeriodStart: start, PeriodEnd: &end}
	if closed.IsActive() {
		t.Fatal("closed record reported active")
	}
	if length, known := closed.PeriodLength(); !known || length != 4 {
		t.Fatalf("expected period length 4, got %d (%v)", length, known)
	}

	sameDayEnd := start
	singleDay := CycleRecord{PeriodStart: start, PeriodEnd: &sameDayEnd}
	if length, known := singleDay.PeriodLength(); !known || length != 0 {
		t.Fatalf("expected zero-length period, got %d (%v)", length, known)
	}

	before := start.AddDate(0, 0, -1)
	inverted := CycleRecord{PeriodStart: start, PeriodEnd: &before}
	if _, known := inverted.PeriodLength(); known {
		t.Fatal("end before start must not report a length")
	}
}

func TestCycleRecordPeriodLengthAcrossDSTTransition(t *testing.T) {
	t.Parallel()

	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// Spring forward 2024-03-10: the span covers a 23-hour day, so a
	// naive hour division would undercount by one.
	start := time.Date(2024, time.March, 8, 0, 0, 0, 0, location)
	end := time.Date(2024, time.March, 13, 0, 0, 0, 0, location)
	record := CycleRecord{PeriodStart: start, PeriodEnd: &end}
	if length, known := record.PeriodLength(); !known || length != 5 {
		t.Fatalf("expected period length 5 across DST, got %d (%v)", length, known)
	}

	// Fall back 2024-11-03: a 25-hour day must not overcount either.
	start = time.Date(2024, time.November, 1, 0, 0, 0, 0, location)
	end = time.Date(2024, time.November, 6, 0, 0, 0, 0, location)
	record = CycleRecord{PeriodStart: start, PeriodEnd: &end}
	if length, known := record.PeriodLength(); !known || length != 5 {
		t.Fatalf("expected period length 5 across fall-back, got %d (%v)", length, known)
	}
}

func TestFlowIntensityValidationAndRank(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", FlowSpotting, FlowLight, FlowMedium, FlowHeavy} {
		if !IsValidFlowIntensity(value) {
			t.Fatalf("expected %q to be a valid flow intensity", value)
		}
	}
	if IsValidFlowIntensity("torrential") {
		t.Fatal("unknown flow intensity accepted")
	}

	ordered := []string{"", FlowSpotting, FlowLight, FlowMedium, FlowHeavy}
	for i := 1; i < len(ordered); i++ {
		if FlowIntensityRank(ordered[i]) <= FlowIntensityRank(ordered[i-1]) {
			t.Fatalf("flow rank not strictly increasing at %q", ordered[i])
		}
	}
}

func TestDailyLogValidators(t *testing.T) {
	t.Parallel()

	if !IsValidFlowLevel(FlowNone) || !IsValidFlowLevel("") || IsValidFlowLevel("flood") {
		t.Fatal("flow level validation broken")
	}
	if !IsValidMood("") || !IsValidMood(MoodIrritable) || IsValidMood("ecstatic") {
		t.Fatal("mood validation broken")
	}
	if !IsValidSleepQuality(SleepRestless) || IsValidSleepQuality("perfect") {
		t.Fatal("sleep quality validation broken")
	}
	if !IsValidPainLevel(0) || !IsValidPainLevel(10) || IsValidPainLevel(-1) || IsValidPainLevel(11) {
		t.Fatal("pain level bounds broken")
	}
	if !IsValidEnergyLevel(5) || IsValidEnergyLevel(42) {
		t.Fatal("energy level bounds broken")
	}
}

func TestSymptomCatalog(t *testing.T) {
	t.Parallel()

	builtin := BuiltinSymptoms()
	if len(builtin) == 0 {
		t.Fatal("builtin symptom catalog is empty")
	}

	order := SymptomOrderMap()
	if len(order) != len(builtin) {
		t.Fatalf("catalog has duplicate names: %d unique of %d", len(order), len(builtin))
	}
	for index, name := range builtin {
		if order[name] != index {
			t.Fatalf("order map out of sync for %q", name)
		}
		if !IsKnownSymptom(name) {
			t.Fatalf("builtin symptom %q not recognized", name)
		}
	}
	if IsKnownSymptom("werewolf") {
		t.Fatal("unknown symptom recognized")
	}
}
