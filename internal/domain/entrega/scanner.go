package entrega

import (
	"time"

	"acta_notification_service/internal/domain/businesshours"
)

// ReminderThresholdHours is the business-hours age at which an acta with an
// unsent damage report triggers a reminder.
const ReminderThresholdHours = 10.0

// ScanPending filters a record snapshot down to reminder candidates. A
// record qualifies when it still requires a damage report, neither the
// report nor a reminder has been sent, and its business-hours age meets the
// threshold. Pure: the snapshot is not mutated and input order is kept.
func ScanPending(records []Entrega, cal businesshours.Calendar, threshold float64, now time.Time) []PendingEntry {
	var pending []PendingEntry
	for i := range records {
		e := &records[i]
		if e.ID == "" || !e.RequiresDamageReport || e.DamageReportSent || e.ReminderSent {
			continue
		}
		createdAt := e.ReminderClockStart()
		hours := cal.Elapsed(createdAt, now)
		if hours < threshold {
			continue
		}
		pending = append(pending, PendingEntry{
			ID:            e.ID,
			EventName:     e.EventName,
			Venue:         e.Venue,
			CreatedAt:     createdAt,
			BusinessHours: hours,
		})
	}
	return pending
}
