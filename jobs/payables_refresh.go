package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PayablesRefresher recomputes vendor payables balances from the financial
// transactions ledger.
type PayablesRefresher struct {
	Pool   *pgxpool.Pool
	Logger *slog.Logger
}

// Handle processes TaskVendorPayablesRefresh tasks.
func (p *PayablesRefresher) Handle(ctx context.Context, t *asynq.Task) error {
	var payload VendorPayablesPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}

	const refreshOne = `
		UPDATE vendors SET payables = COALESCE((
			SELECT SUM(CASE WHEN ft.type = 'spend' THEN ft.amount ELSE -ft.amount END)
			FROM financial_transactions ft
			WHERE ft.vendor_id = vendors.vendor_id
		), 0), updated_at = NOW()
		WHERE vendor_id = $1`
	const refreshAll = `
		UPDATE vendors SET payables = COALESCE((
			SELECT SUM(CASE WHEN ft.type = 'spend' THEN ft.amount ELSE -ft.amount END)
			FROM financial_transactions ft
			WHERE ft.vendor_id = vendors.vendor_id
		), 0), updated_at = NOW()`

	var err error
	if payload.VendorID > 0 {
		_, err = p.Pool.Exec(ctx, refreshOne, payload.VendorID)
	} else {
		_, err = p.Pool.Exec(ctx, refreshAll)
	}
	if err != nil {
		return err
	}
	if p.Logger != nil {
		p.Logger.Info("payables refreshed", slog.Int64("vendor_id", payload.VendorID))
	}
	return nil
}
