package entrega

// Entrega is one facility hand-over inspection record ("acta de entrega").
// JSON field names match the documents the inspection forms write to the
// shared store. Timestamps are ISO-8601 strings; CreatedAt is set once at
// creation and never mutated, UpdatedAt moves on every write.
type Entrega struct {
	ID                   string `json:"-"`
	EventName            string `json:"nombreEvento"`
	Venue                string `json:"recinto"`
	RequiresDamageReport bool   `json:"requiereReporteDanos"`
	DamageReportSent     bool   `json:"reporteDanosEnviado"`
	ReminderSent         bool   `json:"recordatorioEnviado"`
	CreatedAt            string `json:"fechaCreacion"`
	UpdatedAt            string `json:"fechaActualizacion"`
}

// ReminderClockStart is the timestamp the reminder clock counts from.
// Records predating the fechaCreacion field fall back to the last update,
// even though later unrelated edits move that value.
func (e *Entrega) ReminderClockStart() string {
	if e.CreatedAt != "" {
		return e.CreatedAt
	}
	return e.UpdatedAt
}

// PendingEntry is one reminder candidate. Entries are built per scheduler
// run and discarded afterwards.
type PendingEntry struct {
	ID            string
	EventName     string
	Venue         string
	CreatedAt     string
	BusinessHours float64
}
