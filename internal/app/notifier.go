package app

import (
	"context"
	"fmt"
	"time"

	"acta_notification_service/internal/domain/businesshours"
	"acta_notification_service/internal/domain/entrega"
	"acta_notification_service/internal/domain/mail"

	"github.com/sirupsen/logrus"
)

// Reminder copy. The product is Spanish; these strings match what the
// operations staff already receive.
const (
	reminderTitle  = "Recordatorio: Reporte de Daños pendiente"
	reminderFooter = "Este recordatorio se genera automáticamente dentro del horario laboral (8:00-17:00) y sólo se envía una vez por acta."
)

// costaRica renders human-readable dates in the venue's local time.
var costaRica = time.FixedZone("CST", businesshours.CostaRicaOffsetMinutes*60)

// Notifier composes and delivers reminder mail for pending actas.
type Notifier interface {
	SendReminder(ctx context.Context, entries []entrega.PendingEntry, recipients []string) error
}

// ReminderNotifier implements Notifier over an outbound mail client. One
// batch email covers all pending entries; there is no per-entry send and no
// retry here.
type ReminderNotifier struct {
	mailClient mail.Client
	logger     *logrus.Logger
}

func NewReminderNotifier(mailClient mail.Client, logger *logrus.Logger) *ReminderNotifier {
	return &ReminderNotifier{mailClient: mailClient, logger: logger}
}

func (n *ReminderNotifier) SendReminder(ctx context.Context, entries []entrega.PendingEntry, recipients []string) error {
	if len(entries) == 0 {
		return nil
	}

	items := make([]reminderItem, 0, len(entries))
	for _, entry := range entries {
		title := entry.EventName
		if title == "" {
			title = "Evento sin nombre"
		}
		venue := entry.Venue
		if venue == "" {
			venue = "N/D"
		}
		items = append(items, reminderItem{
			Title: title,
			Subtitle: fmt.Sprintf("Recinto: %s · Creado: %s · Horas hábiles: %.1f",
				venue, formatLocalDate(entry.CreatedAt), entry.BusinessHours),
		})
	}

	html, err := renderReminderHTML(reminderEmail{
		Title:  reminderTitle,
		Intro:  reminderIntro(),
		Items:  items,
		Footer: reminderFooter,
	})
	if err != nil {
		return fmt.Errorf("render reminder body: %w", err)
	}

	msg := mail.Message{
		Subject: reminderSubject(entries),
		HTML:    html,
		To:      recipients,
	}
	if err := n.mailClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("send reminder mail: %w", err)
	}

	n.logger.Infof("Reminder sent for %d pending acta(s) to %d recipient(s).", len(entries), len(recipients))
	return nil
}

// reminderSubject names the event when exactly one acta is pending and
// switches to a count otherwise.
func reminderSubject(entries []entrega.PendingEntry) string {
	if len(entries) == 1 {
		name := entries[0].EventName
		if name == "" {
			name = "Evento"
		}
		return fmt.Sprintf("Recordatorio | Envío de reporte de daños pendiente — %s", name)
	}
	return fmt.Sprintf("Recordatorio | %d eventos sin reporte de daños", len(entries))
}

func reminderIntro() string {
	return fmt.Sprintf("Han transcurrido más de %.0f horas hábiles (%d:00-%d:00) desde que se guardó el acta, pero aún no se ha enviado el reporte de daños correspondiente.",
		entrega.ReminderThresholdHours, businesshours.DefaultStartHour, businesshours.DefaultEndHour)
}

// formatLocalDate renders an ISO timestamp in Costa Rica time. Unparsable
// values pass through untouched so operators still see something.
func formatLocalDate(iso string) string {
	if iso == "" {
		return "Sin fecha"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.In(costaRica).Format("2 Jan 2006, 15:04")
}
