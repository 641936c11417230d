package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderService watches the prediction and pushes telegram reminders ahead
// of the next expected period. It is a consumer of the engine output, not
// part of the computation core.
type ReminderService struct {
	dashboard *DashboardService
	settings  DashboardSettingsLoader
	log       *logrus.Logger

	botToken string
	chatID   string
	enabled  bool
	cronSpec string
	location *time.Location
	client   *http.Client
	cron     *cron.Cron

	mu       sync.Mutex
	sentKeys map[string]time.Time
}

func NewReminderService(dashboard *DashboardService, settings DashboardSettingsLoader, location *time.Location, log *logrus.Logger) *ReminderService {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")

	cronSpec := os.Getenv("REMINDER_CRON")
	if strings.TrimSpace(cronSpec) == "" {
		cronSpec = "0 9 * * *"
	}

	if location == nil {
		location = time.UTC
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &ReminderService{
		dashboard: dashboard,
		settings:  settings,
		log:       log,
		botToken:  botToken,
		chatID:    chatID,
		enabled:   botToken != "" && chatID != "",
		cronSpec:  cronSpec,
		location:  location,
		client:    &http.Client{Timeout: 8 * time.Second},
		sentKeys:  make(map[string]time.Time),
	}
}

func (service *ReminderService) Start(ctx context.Context) {
	if !service.enabled {
		service.log.Info("reminders disabled: telegram credentials not configured")
		return
	}

	service.cron = cron.New(cron.WithLocation(service.location))
	if _, err := service.cron.AddFunc(service.cronSpec, func() {
		service.run(ctx, time.Now())
	}); err != nil {
		service.log.WithError(err).WithField("spec", service.cronSpec).Error("reminders: invalid cron spec")
		return
	}
	service.cron.Start()
	service.log.WithField("spec", service.cronSpec).Info("reminders scheduled")

	go func() {
		<-ctx.Done()
		service.cron.Stop()
	}()
}

func (service *ReminderService) run(ctx context.Context, now time.Time) {
	settings, err := service.settings.Load()
	if err != nil {
		service.log.WithError(err).Error("reminders: load settings failed")
		return
	}
	if !settings.ReminderEnabled {
		return
	}

	view, err := service.dashboard.BuildDashboard(now)
	if err != nil {
		service.log.WithError(err).Error("reminders: build dashboard failed")
		return
	}
	if view.Prediction == nil {
		return
	}

	today := DateAtLocation(now, service.location)
	prediction := view.Prediction

	if prediction.DaysUntilNextPeriod == settings.ReminderDaysBefore {
		key := fmt.Sprintf("period:%s", today.Format(dayKeyLayout))
		if service.shouldSend(key, today) {
			message := fmt.Sprintf("Lunara reminder: your predicted period starts in %d day(s) on %s.",
				settings.ReminderDaysBefore,
				prediction.NextPeriodDate.Format("Jan 2"),
			)
			if err := service.sendTelegram(ctx, message); err != nil {
				service.log.WithError(err).Error("reminders: send period reminder failed")
			}
		}
	}

	if settings.TrackFertileWindow && prediction.FertileWindowStart != nil && sameDay(today, *prediction.FertileWindowStart) {
		key := fmt.Sprintf("fertility:%s", today.Format(dayKeyLayout))
		if service.shouldSend(key, today) {
			message := fmt.Sprintf("Lunara reminder: your fertile window starts today (%s).",
				prediction.FertileWindowStart.Format("Jan 2"),
			)
			if err := service.sendTelegram(ctx, message); err != nil {
				service.log.WithError(err).Error("reminders: send fertility reminder failed")
			}
		}
	}
}

func (service *ReminderService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentAt, exists := service.sentKeys[key]; exists && sameDay(sentAt, today) {
		return false
	}
	service.sentKeys[key] = today

	for existingKey, sentAt := range service.sentKeys {
		if daysBetween(sentAt, today) > 7 {
			delete(service.sentKeys, existingKey)
		}
	}
	return true
}

func (service *ReminderService) sendTelegram(ctx context.Context, message string) error {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", service.botToken)
	form := url.Values{}
	form.Set("chat_id", service.chatID)
	form.Set("text", message)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := service.client.Do(request)
	if err != nil {
		return fmt.Errorf("send telegram request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("telegram responded %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
