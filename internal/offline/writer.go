package offline

import (
	"context"
	"log/slog"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/pkg/idgen"

	"github.com/google/uuid"
)

type SubmitResult struct {
	Queued bool
	// Entry is set when the changes were queued.
	Entry *Entry
	// Result is set when the server accepted the changes.
	Result *SyncResult
}

// Writer sends changes online when possible and queues them otherwise.
type Writer struct {
	queue   Queue
	client  SyncClient
	ids     idgen.Generator
	slogger *slog.Logger
}

func NewWriter(queue Queue, client SyncClient, ids idgen.Generator, slogger *slog.Logger) *Writer {
	return &Writer{queue: queue, client: client, ids: ids, slogger: slogger}
}

// Submit queues the changes behind any entries already pending so that edits
// reach the server in the order they were made. With an empty queue it tries
// the server first and queues only on a network failure.
//
// The entry ID doubles as the Idempotency-Key of the online attempt, so a
// queued retry of a request the server already applied is seen as a replay.
func (w *Writer) Submit(ctx context.Context, planID uuid.UUID, changes []floorplan.Change) (SubmitResult, error) {
	id := w.ids.New()

	pending, err := w.queue.Pending(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	if len(pending) > 0 {
		return w.enqueue(ctx, id, planID, changes)
	}

	res, err := w.client.Sync(ctx, planID, changes, id)
	if err == nil {
		return SubmitResult{Result: &res}, nil
	}
	if !IsNetworkError(err) {
		return SubmitResult{}, err
	}
	w.slogger.Warn("server unreachable, queueing changes", "plan_id", planID, "entry_id", id, "error", err)
	return w.enqueue(context.WithoutCancel(ctx), id, planID, changes)
}

func (w *Writer) enqueue(ctx context.Context, id, planID uuid.UUID, changes []floorplan.Change) (SubmitResult, error) {
	e, err := w.queue.EnqueueWithID(ctx, id, planID, changes)
	if err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Queued: true, Entry: &e}, nil
}
