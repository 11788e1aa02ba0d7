package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"acta_notification_service/internal/domain/entrega"

	"github.com/lib/pq" // For pq.Array and driver registration
)

// PostgresEntregaRepository implements entrega.Repository for self-hosted
// deployments that keep actas in Postgres instead of the Realtime Database.
// Timestamps are stored as ISO-8601 text to match the document semantics.
type PostgresEntregaRepository struct {
	db *sql.DB
}

func NewPostgresEntregaRepository(db *sql.DB) *PostgresEntregaRepository {
	return &PostgresEntregaRepository{db: db}
}

// ListAll returns every acta ordered by the insertion sequence.
func (r *PostgresEntregaRepository) ListAll(ctx context.Context) ([]entrega.Entrega, error) {
	query := `SELECT id, COALESCE(nombre_evento, ''), COALESCE(recinto, ''),
                     requiere_reporte_danos, reporte_danos_enviado, recordatorio_enviado,
                     COALESCE(fecha_creacion, ''), COALESCE(fecha_actualizacion, '')
              FROM entregas
              ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing entregas: %w", err)
	}
	defer rows.Close()

	var records []entrega.Entrega
	for rows.Next() {
		var e entrega.Entrega
		if err := rows.Scan(
			&e.ID, &e.EventName, &e.Venue,
			&e.RequiresDamageReport, &e.DamageReportSent, &e.ReminderSent,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning entrega row: %w", err)
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entrega rows: %w", err)
	}
	return records, nil
}

// MarkRemindersSent updates all given ids in one statement, so the write is
// atomic: either every acta in the batch is flagged or none is.
func (r *PostgresEntregaRepository) MarkRemindersSent(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE entregas
              SET recordatorio_enviado = TRUE, fecha_actualizacion = $2
              WHERE id = ANY($1)`
	nowISO := at.UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids), nowISO); err != nil {
		return fmt.Errorf("error marking %d reminder(s) sent: %w", len(ids), err)
	}
	return nil
}
