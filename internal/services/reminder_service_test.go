package services

import (
	"testing"
	"time"
)

func TestReminderDisabledWithoutCredentials(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	service := NewReminderService(nil, nil, nil, nil)
	if service.enabled {
		t.Fatal("reminders must stay disabled without telegram credentials")
	}
}

func TestReminderCronSpecDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("REMINDER_CRON", "")

	service := NewReminderService(nil, nil, nil, nil)
	if !service.enabled {
		t.Fatal("expected reminders enabled with credentials")
	}
	if service.cronSpec != "0 9 * * *" {
		t.Fatalf("expected default cron spec, got %q", service.cronSpec)
	}

	t.Setenv("REMINDER_CRON", "30 7 * * *")
	service = NewReminderService(nil, nil, nil, nil)
	if service.cronSpec != "30 7 * * *" {
		t.Fatalf("expected configured cron spec, got %q", service.cronSpec)
	}
}

func TestShouldSendDeduplicatesPerDay(t *testing.T) {
	t.Parallel()

	service := &ReminderService{sentKeys: make(map[string]time.Time)}
	today := mustParseDay(t, "2024-02-24")

	if !service.shouldSend("period:2024-02-24", today) {
		t.Fatal("first send of the day must pass")
	}
	if service.shouldSend("period:2024-02-24", today) {
		t.Fatal("repeat send on the same day must be suppressed")
	}
	if !service.shouldSend("fertility:2024-02-24", today) {
		t.Fatal("a different reminder key must pass independently")
	}
}

func TestShouldSendExpiresOldKeys(t *testing.T) {
	t.Parallel()

	service := &ReminderService{sentKeys: make(map[string]time.Time)}

	firstDay := mustParseDay(t, "2024-02-01")
	if !service.shouldSend("period:2024-02-01", firstDay) {
		t.Fatal("first send must pass")
	}

	laterDay := mustParseDay(t, "2024-02-20")
	if !service.shouldSend("period:2024-02-20", laterDay) {
		t.Fatal("send on a later day must pass")
	}
	if _, exists := service.sentKeys["period:2024-02-01"]; exists {
		t.Fatal("stale dedupe key survived expiry")
	}
}
