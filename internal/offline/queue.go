// Package offline records plan edits made while the service is unreachable and
// replays them, oldest first, once it is reachable again.
package offline

import (
	"context"
	"errors"
	"time"

	"floorplan-service/internal/domain/floorplan"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound   = errors.New("offline entry not found")
	ErrPendingEntries  = errors.New("offline queue still has pending entries")
	ErrEmptyChangeList = errors.New("offline entry needs at least one change")
	ErrNilEntryID      = errors.New("offline entry needs an ID")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Entry is one batch of changes for a single plan. Its ID doubles as the
// Idempotency-Key sent on replay.
type Entry struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	Changes   []floorplan.Change
	Status    Status
	Reason    string
	Attempts  int
	CreatedAt time.Time
}

// Queue is a durable, append-ordered store of offline entries. Acked entries
// are removed; rejected entries stay until Clear.
type Queue interface {
	Enqueue(ctx context.Context, planID uuid.UUID, changes []floorplan.Change) (Entry, error)
	// EnqueueWithID stores an entry under an ID the caller already sent as an
	// Idempotency-Key, so its replay is recognised by the server.
	EnqueueWithID(ctx context.Context, id, planID uuid.UUID, changes []floorplan.Change) (Entry, error)
	Pending(ctx context.Context) ([]Entry, error)
	List(ctx context.Context) ([]Entry, error)
	MarkAttempt(ctx context.Context, id uuid.UUID) error
	Ack(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, reason string) error
	Clear(ctx context.Context) error
}
