package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionsPruner deletes expired session records.
type SessionsPruner struct {
	Pool   *pgxpool.Pool
	Logger *slog.Logger
}

// Handle processes TaskSessionsPrune tasks.
func (p *SessionsPruner) Handle(ctx context.Context, t *asynq.Task) error {
	tag, err := p.Pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return err
	}
	if p.Logger != nil {
		p.Logger.Info("sessions pruned", slog.Int64("deleted", tag.RowsAffected()))
	}
	return nil
}
