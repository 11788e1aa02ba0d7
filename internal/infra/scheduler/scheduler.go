package scheduler

import (
	"context"
	"time"

	"acta_notification_service/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// HomeTimeZone is where the venue operates; the hourly trigger fires on
// this clock.
const HomeTimeZone = "America/Costa_Rica"

// ReminderRunner is the application surface the cron job needs.
type ReminderRunner interface {
	RunReminderCheck(ctx context.Context) app.RunResult
}

// ReminderScheduler owns the cron engine that fires the hourly
// damage-report reminder check. The trigger is fire-and-forget: run
// outcomes are logged, never raised to the cron host.
type ReminderScheduler struct {
	cronEngine *cron.Cron
	service    ReminderRunner
	logger     *logrus.Logger
	cronSpec   string
}

func NewReminderScheduler(
	service ReminderRunner,
	logger *logrus.Logger,
	cronSpec string, // e.g., "0 * * * *" (top of every hour)
	loc *time.Location,
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine: cron.New(cron.WithLocation(loc)),
		service:    service,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *ReminderScheduler) Start() {
	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for damage-report reminder check.")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result := s.service.RunReminderCheck(ctx)
		switch {
		case result.Err != nil:
			s.logger.Errorf("Reminder run finished with outcome %s: %v", result.Outcome, result.Err)
		case result.Outcome == app.OutcomeSent:
			s.logger.Infof("Reminder run sent notifications for %d acta(s).", result.Pending)
		default:
			s.logger.Infof("Reminder run finished with outcome %s.", result.Outcome)
		}
	})
	if err != nil {
		s.logger.Fatalf("FATAL: Could not add reminder check cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Reminder scheduler started.")
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running job to finish.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
