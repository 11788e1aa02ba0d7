package entrega

import (
	"context"
	"time"
)

// Repository is the slice of the shared record store the reminder job
// needs: one snapshot read plus the batched reminder-flag write. The store
// itself is owned by the inspection forms and the admin UI.
type Repository interface {
	// ListAll returns every inspection record in insertion order.
	ListAll(ctx context.Context) ([]Entrega, error)

	// MarkRemindersSent sets recordatorioEnviado and refreshes
	// fechaActualizacion for the given ids as one logical write. No other
	// field of the records may be touched.
	MarkRemindersSent(ctx context.Context, ids []string, at time.Time) error
}
