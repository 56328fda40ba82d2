package shared

import (
	"context"
	"time"

	"floorplan-service/internal/domain/floorplan"

	"github.com/google/uuid"
)

// FloorPlanRepository is the aggregate store. Implementations report failures
// as infra.RepositoryError kinds.
type FloorPlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error)
	List(ctx context.Context) ([]*floorplan.FloorPlan, error)
	// ListByBookedUser returns plans holding at least one room booked by userID.
	ListByBookedUser(ctx context.Context, userID uuid.UUID) ([]*floorplan.FloorPlan, error)
	Create(ctx context.Context, plan *floorplan.FloorPlan) error
	// Replace overwrites the stored plan only if its version still equals expectedVersion.
	Replace(ctx context.Context, plan *floorplan.FloorPlan, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlanLocker serializes writers of one plan.
type PlanLocker interface {
	Lock(ctx context.Context, planID uuid.UUID) (unlock func(), err error)
}

type EventKind string

const (
	EventPlanCreated  EventKind = "plan.created"
	EventPlanUpdated  EventKind = "plan.updated"
	EventPlanDeleted  EventKind = "plan.deleted"
	EventPlanSynced   EventKind = "plan.synced"
	EventRoomBooked   EventKind = "room.booked"
	EventRoomUnbooked EventKind = "room.unbooked"
)

type PlanEvent struct {
	Kind       EventKind  `json:"kind"`
	PlanID     uuid.UUID  `json:"planId"`
	Version    int        `json:"version"`
	RoomNumber *int       `json:"roomNumber,omitempty"`
	UserID     *uuid.UUID `json:"userId,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// EventPublisher fans out committed plan mutations. Publishing happens after
// the write, so a failure never rolls back the mutation.
type EventPublisher interface {
	Publish(ctx context.Context, event PlanEvent) error
}

type MutationOutcome string

const (
	OutcomeApplied  MutationOutcome = "applied"
	OutcomeConflict MutationOutcome = "conflict"
	OutcomeRejected MutationOutcome = "rejected"
	OutcomeFailed   MutationOutcome = "failed"
)

type MetricsRecorder interface {
	ObserveMutation(op string, outcome MutationOutcome, elapsed time.Duration)
	ObserveSyncBatch(applied, skipped int)
	ObserveStoreRetry()
}
