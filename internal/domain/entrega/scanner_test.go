package entrega

import (
	"testing"
	"time"

	"acta_notification_service/internal/domain/businesshours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 16:00 Costa Rica time. A record created Monday morning is far
// past the threshold; one created the same morning is not.
var scanNow = time.Date(2025, 6, 18, 22, 0, 0, 0, time.UTC)

const (
	oldCreatedAt    = "2025-06-16T08:00:00-06:00"
	recentCreatedAt = "2025-06-18T10:00:00-06:00"
)

func TestScanPendingQualifyingRecord(t *testing.T) {
	records := []Entrega{{
		ID:                   "acta-1",
		EventName:            "Expo Construcción",
		Venue:                "Salón Principal",
		RequiresDamageReport: true,
		CreatedAt:            oldCreatedAt,
	}}

	pending := ScanPending(records, businesshours.Default(), ReminderThresholdHours, scanNow)

	require.Len(t, pending, 1)
	assert.Equal(t, "acta-1", pending[0].ID)
	assert.Equal(t, "Expo Construcción", pending[0].EventName)
	assert.Equal(t, "Salón Principal", pending[0].Venue)
	assert.Equal(t, oldCreatedAt, pending[0].CreatedAt)
	assert.GreaterOrEqual(t, pending[0].BusinessHours, ReminderThresholdHours)
}

func TestScanPendingExclusions(t *testing.T) {
	base := Entrega{
		ID:                   "acta-1",
		RequiresDamageReport: true,
		CreatedAt:            oldCreatedAt,
	}

	tests := []struct {
		name   string
		mutate func(*Entrega)
	}{
		{"no damage report required", func(e *Entrega) { e.RequiresDamageReport = false }},
		{"damage report already sent", func(e *Entrega) { e.DamageReportSent = true }},
		{"reminder already sent", func(e *Entrega) { e.ReminderSent = true }},
		{"missing id", func(e *Entrega) { e.ID = "" }},
		{"under threshold", func(e *Entrega) { e.CreatedAt = recentCreatedAt }},
		{"no timestamps at all", func(e *Entrega) { e.CreatedAt = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := base
			tc.mutate(&record)
			pending := ScanPending([]Entrega{record}, businesshours.Default(), ReminderThresholdHours, scanNow)
			assert.Empty(t, pending)
		})
	}
}

func TestScanPendingReminderSentWinsOverAge(t *testing.T) {
	// Idempotence: however old the record, a sent reminder keeps it out.
	records := []Entrega{{
		ID:                   "acta-old",
		RequiresDamageReport: true,
		ReminderSent:         true,
		CreatedAt:            "2024-01-08T09:00:00-06:00",
	}}

	pending := ScanPending(records, businesshours.Default(), ReminderThresholdHours, scanNow)
	assert.Empty(t, pending)
}

func TestScanPendingFallsBackToUpdatedAt(t *testing.T) {
	records := []Entrega{{
		ID:                   "acta-legacy",
		RequiresDamageReport: true,
		UpdatedAt:            oldCreatedAt,
	}}

	pending := ScanPending(records, businesshours.Default(), ReminderThresholdHours, scanNow)

	require.Len(t, pending, 1)
	assert.Equal(t, oldCreatedAt, pending[0].CreatedAt)
}

func TestScanPendingKeepsInputOrder(t *testing.T) {
	records := []Entrega{
		{ID: "b", RequiresDamageReport: true, CreatedAt: oldCreatedAt},
		{ID: "a", RequiresDamageReport: true, CreatedAt: oldCreatedAt},
		{ID: "c", RequiresDamageReport: true, CreatedAt: oldCreatedAt},
	}

	pending := ScanPending(records, businesshours.Default(), ReminderThresholdHours, scanNow)

	require.Len(t, pending, 3)
	assert.Equal(t, "b", pending[0].ID)
	assert.Equal(t, "a", pending[1].ID)
	assert.Equal(t, "c", pending[2].ID)
}

func TestScanPendingEmptySnapshot(t *testing.T) {
	assert.Empty(t, ScanPending(nil, businesshours.Default(), ReminderThresholdHours, scanNow))
}
