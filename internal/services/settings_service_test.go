package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/lunara/internal/models"
)

type stubSettingsRepository struct {
	stored *models.CycleSettings

	failFind bool
}

func (stub *stubSettingsRepository) Find() (models.CycleSettings, bool, error) {
	if stub.failFind {
		return models.CycleSettings{}, false, errors.New("stub find failure")
	}
	if stub.stored == nil {
		return models.CycleSettings{}, false, nil
	}
	return *stub.stored, true, nil
}

func (stub *stubSettingsRepository) Create(settings *models.CycleSettings) error {
	settings.ID = 1
	copied := *settings
	stub.stored = &copied
	return nil
}

func (stub *stubSettingsRepository) Save(settings *models.CycleSettings) error {
	copied := *settings
	stub.stored = &copied
	return nil
}

func TestLoadSeedsDefaultsOnFirstUse(t *testing.T) {
	t.Parallel()

	repo := &stubSettingsRepository{}
	service := NewSettingsService(repo)

	settings, err := service.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected default cycle length %d, got %d", models.DefaultCycleLength, settings.AverageCycleLength)
	}
	if settings.AveragePeriodLength != models.DefaultPeriodLength {
		t.Fatalf("expected default period length %d, got %d", models.DefaultPeriodLength, settings.AveragePeriodLength)
	}
	if repo.stored == nil {
		t.Fatal("defaults were not persisted")
	}

	// Second load returns the seeded row, not a fresh one.
	repo.stored.AverageCycleLength = 30
	reloaded, err := service.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.AverageCycleLength != 30 {
		t.Fatalf("expected persisted row on reload, got %+v", reloaded)
	}
}

func TestLoadWrapsRepositoryFailure(t *testing.T) {
	t.Parallel()

	service := NewSettingsService(&stubSettingsRepository{failFind: true})
	if _, err := service.Load(); !errors.Is(err, ErrSettingsLoadFailed) {
		t.Fatalf("expected ErrSettingsLoadFailed, got %v", err)
	}
}

func TestUpdatePersistsValidInput(t *testing.T) {
	t.Parallel()

	repo := &stubSettingsRepository{}
	service := NewSettingsService(repo)

	updated, err := service.Update(SettingsUpdateInput{
		AverageCycleLength:  30,
		AveragePeriodLength: 6,
		LutealPhaseLength:   13,
		TrackOvulation:      true,
		PMSWindowDays:       4,
		ReminderEnabled:     true,
		ReminderDaysBefore:  3,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.AverageCycleLength != 30 || updated.LutealPhaseLength != 13 {
		t.Fatalf("update lost fields: %+v", updated)
	}
	if updated.TrackFertileWindow || updated.TrackPMS {
		t.Fatalf("disabled toggles should persist as false: %+v", updated)
	}
	if repo.stored == nil || repo.stored.ReminderDaysBefore != 3 {
		t.Fatalf("update not persisted: %+v", repo.stored)
	}
}

func TestUpdateValidation(t *testing.T) {
	t.Parallel()

	valid := SettingsUpdateInput{
		AverageCycleLength:  28,
		AveragePeriodLength: 5,
		LutealPhaseLength:   14,
		PMSWindowDays:       5,
		ReminderDaysBefore:  2,
	}

	cases := []struct {
		name   string
		mutate func(*SettingsUpdateInput)
		want   error
	}{
		{name: "cycle too short", mutate: func(input *SettingsUpdateInput) { input.AverageCycleLength = 14 }, want: ErrSettingsCycleLengthOutOfRange},
		{name: "cycle too long", mutate: func(input *SettingsUpdateInput) { input.AverageCycleLength = 91 }, want: ErrSettingsCycleLengthOutOfRange},
		{name: "period zero", mutate: func(input *SettingsUpdateInput) { input.AveragePeriodLength = 0 }, want: ErrSettingsPeriodLengthOutOfRange},
		{name: "luteal short", mutate: func(input *SettingsUpdateInput) { input.LutealPhaseLength = 9 }, want: ErrSettingsLutealLengthOutOfRange},
		{name: "luteal long", mutate: func(input *SettingsUpdateInput) { input.LutealPhaseLength = 17 }, want: ErrSettingsLutealLengthOutOfRange},
		{name: "pms window", mutate: func(input *SettingsUpdateInput) { input.PMSWindowDays = 15 }, want: ErrSettingsPMSWindowOutOfRange},
		{name: "reminder lead", mutate: func(input *SettingsUpdateInput) { input.ReminderDaysBefore = 15 }, want: ErrSettingsReminderLeadOutOfRange},
		{name: "period half of cycle", mutate: func(input *SettingsUpdateInput) {
			input.AverageCycleLength = 20
			input.AveragePeriodLength = 10
		}, want: ErrSettingsPeriodExceedsHalfCycle},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			input := valid
			testCase.mutate(&input)
			service := NewSettingsService(&stubSettingsRepository{})
			if _, err := service.Update(input); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}
