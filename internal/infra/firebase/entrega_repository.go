package firebase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"acta_notification_service/internal/domain/entrega"
)

const entregasPath = "entregas"

// EntregaRepository implements entrega.Repository on the Realtime Database,
// the store the inspection forms write to in production.
type EntregaRepository struct {
	client *Client
}

func NewEntregaRepository(client *Client) *EntregaRepository {
	return &EntregaRepository{client: client}
}

// ListAll reads the whole entregas subtree. Push keys sort
// lexicographically in creation order, which preserves the store's
// insertion order for the scanner.
func (r *EntregaRepository) ListAll(ctx context.Context) ([]entrega.Entrega, error) {
	var snapshot map[string]entrega.Entrega
	if err := r.client.get(ctx, entregasPath, &snapshot); err != nil {
		return nil, fmt.Errorf("read entregas snapshot: %w", err)
	}
	if len(snapshot) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]entrega.Entrega, 0, len(keys))
	for _, k := range keys {
		e := snapshot[k]
		e.ID = k
		records = append(records, e)
	}
	return records, nil
}

// MarkRemindersSent flips recordatorioEnviado and refreshes
// fechaActualizacion for every id in one multi-path update.
func (r *EntregaRepository) MarkRemindersSent(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	nowISO := at.UTC().Format(time.RFC3339)
	updates := make(map[string]any, len(ids)*2)
	for _, id := range ids {
		updates[fmt.Sprintf("%s/%s/recordatorioEnviado", entregasPath, id)] = true
		updates[fmt.Sprintf("%s/%s/fechaActualizacion", entregasPath, id)] = nowISO
	}

	if err := r.client.update(ctx, updates); err != nil {
		return fmt.Errorf("mark %d reminder(s) sent: %w", len(ids), err)
	}
	return nil
}
