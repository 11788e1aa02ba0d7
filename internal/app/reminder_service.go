package app

import (
	"context"
	"time"

	"acta_notification_service/internal/domain/businesshours"
	"acta_notification_service/internal/domain/entrega"
	"acta_notification_service/internal/domain/pool"

	"github.com/sirupsen/logrus"
)

// RunOutcome classifies how one reminder run ended.
type RunOutcome string

const (
	OutcomeNothingPending RunOutcome = "NOTHING_PENDING"
	OutcomeSent           RunOutcome = "SENT"
	OutcomeNoRecipients   RunOutcome = "NO_RECIPIENTS"
	OutcomeScanFailed     RunOutcome = "SCAN_FAILED"
	OutcomeNotifyFailed   RunOutcome = "NOTIFY_FAILED"
	OutcomePersistFailed  RunOutcome = "PERSIST_FAILED"
)

// RunResult is what one scheduler run reports back. The cron adapter only
// logs it; tests assert on it directly.
type RunResult struct {
	Outcome RunOutcome
	Pending int
	Err     error
}

// RecipientResolver yields the recipient list for a named pool.
type RecipientResolver interface {
	Resolve(ctx context.Context, name string) []string
}

// ReminderService drives one reminder cycle: scan the record snapshot,
// resolve recipients, send one batch email, persist the reminded flags.
// It keeps no state between runs; pending status is re-read from the store
// every cycle, which is what makes reminders at-most-once.
type ReminderService struct {
	entregaRepo entrega.Repository
	resolver    RecipientResolver
	notifier    Notifier
	calendar    businesshours.Calendar
	threshold   float64
	poolName    string
	logger      *logrus.Logger
	now         func() time.Time
}

func NewReminderService(
	entregaRepo entrega.Repository,
	resolver RecipientResolver,
	notifier Notifier,
	logger *logrus.Logger,
) *ReminderService {
	return &ReminderService{
		entregaRepo: entregaRepo,
		resolver:    resolver,
		notifier:    notifier,
		calendar:    businesshours.Default(),
		threshold:   entrega.ReminderThresholdHours,
		poolName:    pool.RevisionPoolName,
		logger:      logger,
		now:         time.Now,
	}
}

// RunReminderCheck executes one reminder cycle. Failures are folded into
// the returned result instead of raised: the hourly cadence is the retry
// mechanism, and nothing is persisted unless the mail was accepted first.
func (s *ReminderService) RunReminderCheck(ctx context.Context) RunResult {
	now := s.now()

	records, err := s.entregaRepo.ListAll(ctx)
	if err != nil {
		s.logger.Errorf("Reminder check: could not read entregas: %v", err)
		return RunResult{Outcome: OutcomeScanFailed, Err: err}
	}
	if len(records) == 0 {
		return RunResult{Outcome: OutcomeNothingPending}
	}

	pending := entrega.ScanPending(records, s.calendar, s.threshold, now)
	if len(pending) == 0 {
		return RunResult{Outcome: OutcomeNothingPending}
	}
	s.logger.Infof("Reminder check: %d acta(s) past the %.0f business-hour threshold.", len(pending), s.threshold)

	recipients := s.resolver.Resolve(ctx, s.poolName)
	if len(recipients) == 0 {
		// The resolver carries a fixed fallback, so this should not
		// happen; never send to zero recipients regardless.
		s.logger.Warn("Reminder check: no recipients resolved, skipping send.")
		return RunResult{Outcome: OutcomeNoRecipients, Pending: len(pending)}
	}

	if err := s.notifier.SendReminder(ctx, pending, recipients); err != nil {
		s.logger.Errorf("Reminder check: notification failed, records stay pending: %v", err)
		return RunResult{Outcome: OutcomeNotifyFailed, Pending: len(pending), Err: err}
	}

	ids := make([]string, 0, len(pending))
	for _, entry := range pending {
		ids = append(ids, entry.ID)
	}
	if err := s.entregaRepo.MarkRemindersSent(ctx, ids, now); err != nil {
		// The mail went out but the flags did not stick; the next run may
		// send a duplicate. Surface loudly.
		s.logger.Errorf("Reminder check: could not mark %d acta(s) as reminded: %v", len(ids), err)
		return RunResult{Outcome: OutcomePersistFailed, Pending: len(pending), Err: err}
	}

	s.logger.Infof("Reminder check: marked %d acta(s) as reminded.", len(ids))
	return RunResult{Outcome: OutcomeSent, Pending: len(pending)}
}
