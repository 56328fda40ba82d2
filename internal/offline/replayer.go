package offline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ReplayReport struct {
	Acked    int
	Rejected int
	// Remaining counts entries left pending because replay stopped early.
	Remaining int
	// StoppedAt is the entry whose transient failure halted the replay.
	StoppedAt *uuid.UUID
	Err       error
}

// Replayer drains a Queue through a SyncClient in append order.
type Replayer struct {
	queue   Queue
	client  SyncClient
	slogger *slog.Logger
}

func NewReplayer(queue Queue, client SyncClient, slogger *slog.Logger) *Replayer {
	return &Replayer{queue: queue, client: client, slogger: slogger}
}

// Replay sends every pending entry oldest first. An entry is removed only
// after the server confirms it; a permanent rejection is kept as rejected and
// replay continues; any other failure stops replay with that entry and all
// later ones still pending. Queue errors are returned directly.
func (r *Replayer) Replay(ctx context.Context) (ReplayReport, error) {
	var report ReplayReport

	pending, err := r.queue.Pending(ctx)
	if err != nil {
		return report, err
	}

	for i, e := range pending {
		if err := ctx.Err(); err != nil {
			report.Remaining = len(pending) - i
			report.Err = err
			return report, nil
		}
		if err := r.queue.MarkAttempt(ctx, e.ID); err != nil {
			return report, err
		}

		res, err := r.client.Sync(ctx, e.PlanID, e.Changes, e.ID)
		// the server has answered; record it even if ctx is cancelled meanwhile
		recordCtx := context.WithoutCancel(ctx)
		switch {
		case err == nil:
			if err := r.queue.Ack(recordCtx, e.ID); err != nil {
				return report, err
			}
			report.Acked++
			r.slogger.Info("offline entry synced",
				"entry_id", e.ID, "plan_id", e.PlanID, "version", res.Version, "replayed", res.Replayed)
		case IsPermanent(err):
			if err := r.queue.Reject(recordCtx, e.ID, err.Error()); err != nil {
				return report, err
			}
			report.Rejected++
			r.slogger.Warn("offline entry rejected", "entry_id", e.ID, "plan_id", e.PlanID, "error", err)
		default:
			id := e.ID
			report.StoppedAt = &id
			report.Remaining = len(pending) - i
			report.Err = err
			r.slogger.Warn("offline replay stopped", "entry_id", e.ID, "remaining", report.Remaining, "error", err)
			return report, nil
		}
	}
	return report, nil
}
