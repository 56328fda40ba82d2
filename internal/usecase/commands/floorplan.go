package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/domain/user"
	"floorplan-service/internal/infra"
	"floorplan-service/internal/pkg/clock"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/pkg/idgen"
	"floorplan-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrActingForOthers = errs.New("only admins may act on behalf of another user")

type Settings struct {
	ConflictPolicy         floorplan.ConflictPolicy
	DefaultBookingDuration time.Duration
}

type CreatePlanRequest struct {
	Name        string
	Description string
	Seats       []floorplan.Seat
	Rooms       []floorplan.Room
}

type ReplacePlanRequest struct {
	CallerVersion *int
	Replacement   floorplan.Replacement
}

type BookRoomRequest struct {
	PlanID          uuid.UUID
	RoomNumber      int
	OnBehalfOf      *uuid.UUID
	DurationMinutes *int
}

type UnbookRoomRequest struct {
	PlanID     uuid.UUID
	RoomNumber int
	UserID     *uuid.UUID
}

type SyncChangesRequest struct {
	PlanID   uuid.UUID
	Changes  []floorplan.Change
	BatchKey *uuid.UUID
}

type RoomMutationResult struct {
	Room floorplan.Room
	Plan *floorplan.FloorPlan
}

type SyncChangesResult struct {
	floorplan.SyncResult
}

type FloorPlanCommands interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*floorplan.FloorPlan, error)
	ReplacePlan(ctx context.Context, planID uuid.UUID, req ReplacePlanRequest) (*floorplan.FloorPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
	BookRoom(ctx context.Context, req BookRoomRequest, actor user.Principal) (*RoomMutationResult, error)
	UnbookRoom(ctx context.Context, req UnbookRoomRequest, actor user.Principal) (*RoomMutationResult, error)
	SyncChanges(ctx context.Context, req SyncChangesRequest) (*SyncChangesResult, error)
}

type floorPlanUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	metrics   shared.MetricsRecorder
	clock     clock.Clock
	ids       idgen.Generator
	settings  Settings
	slogger   *slog.Logger
}

func NewFloorPlanUseCase(
	uow shared.UnitOfWork,
	publisher shared.EventPublisher,
	metrics shared.MetricsRecorder,
	clk clock.Clock,
	ids idgen.Generator,
	settings Settings,
	slogger *slog.Logger,
) FloorPlanCommands {
	return &floorPlanUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		ids:       ids,
		settings:  settings,
		slogger:   slogger,
	}
}

func (uc *floorPlanUseCaseImpl) CreatePlan(ctx context.Context, req CreatePlanRequest) (*floorplan.FloorPlan, error) {
	start := time.Now()
	now := uc.clock.Now()

	plan, err := floorplan.NewFloorPlan(uc.ids.New(), req.Name, req.Description, req.Seats, req.Rooms, now)
	if err != nil {
		uc.observe("create", start, err)
		return nil, err
	}

	if err := uc.uow.Plans().Create(ctx, plan); err != nil {
		err = errs.Mark(err, errs.ErrDatabaseOperationFailed)
		uc.observe("create", start, err)
		return nil, err
	}

	uc.observe("create", start, nil)
	uc.slogger.Info("floor plan created", "plan_id", plan.ID, "version", plan.Version)
	uc.publish(ctx, shared.PlanEvent{Kind: shared.EventPlanCreated, PlanID: plan.ID, Version: plan.Version, OccurredAt: now})
	return plan, nil
}

func (uc *floorPlanUseCaseImpl) ReplacePlan(ctx context.Context, planID uuid.UUID, req ReplacePlanRequest) (*floorplan.FloorPlan, error) {
	var now time.Time
	plan, err := uc.mutate(ctx, "replace", planID, func(_ context.Context, p *floorplan.FloorPlan) (bool, error) {
		now = uc.clock.Now()
		if err := p.Replace(req.CallerVersion, req.Replacement, uc.settings.ConflictPolicy, now); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.PlanEvent{Kind: shared.EventPlanUpdated, PlanID: plan.ID, Version: plan.Version, OccurredAt: now})
	return plan, nil
}

func (uc *floorPlanUseCaseImpl) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	start := time.Now()
	if err := uc.uow.Plans().Delete(ctx, planID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			err = floorplan.ErrPlanNotFound
		} else {
			err = errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		uc.observe("delete", start, err)
		return err
	}

	uc.observe("delete", start, nil)
	uc.slogger.Info("floor plan deleted", "plan_id", planID)
	uc.publish(ctx, shared.PlanEvent{Kind: shared.EventPlanDeleted, PlanID: planID, OccurredAt: uc.clock.Now()})
	return nil
}

func (uc *floorPlanUseCaseImpl) BookRoom(ctx context.Context, req BookRoomRequest, actor user.Principal) (*RoomMutationResult, error) {
	holder := actor.UserID
	if req.OnBehalfOf != nil && *req.OnBehalfOf != actor.UserID {
		if !actor.IsAdmin() {
			return nil, ErrActingForOthers
		}
		holder = *req.OnBehalfOf
	}

	duration := uc.settings.DefaultBookingDuration
	if req.DurationMinutes != nil {
		duration = time.Duration(*req.DurationMinutes) * time.Minute
	}

	var (
		room floorplan.Room
		now  time.Time
	)
	plan, err := uc.mutate(ctx, "book", req.PlanID, func(_ context.Context, p *floorplan.FloorPlan) (bool, error) {
		now = uc.clock.Now()
		booked, err := p.BookRoom(req.RoomNumber, &holder, duration, now)
		if err != nil {
			return false, err
		}
		room = booked
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.PlanEvent{
		Kind:       shared.EventRoomBooked,
		PlanID:     plan.ID,
		Version:    plan.Version,
		RoomNumber: &room.RoomNumber,
		UserID:     &holder,
		OccurredAt: now,
	})
	return &RoomMutationResult{Room: room, Plan: plan}, nil
}

func (uc *floorPlanUseCaseImpl) UnbookRoom(ctx context.Context, req UnbookRoomRequest, actor user.Principal) (*RoomMutationResult, error) {
	requester := &actor.UserID
	switch {
	case actor.IsAdmin():
		// nil releases any booking
		requester = req.UserID
	case req.UserID != nil && *req.UserID != actor.UserID:
		return nil, ErrActingForOthers
	}

	var (
		room floorplan.Room
		now  time.Time
	)
	plan, err := uc.mutate(ctx, "unbook", req.PlanID, func(_ context.Context, p *floorplan.FloorPlan) (bool, error) {
		now = uc.clock.Now()
		released, err := p.UnbookRoom(req.RoomNumber, requester, now)
		if err != nil {
			return false, err
		}
		room = released
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, shared.PlanEvent{
		Kind:       shared.EventRoomUnbooked,
		PlanID:     plan.ID,
		Version:    plan.Version,
		RoomNumber: &room.RoomNumber,
		UserID:     &actor.UserID,
		OccurredAt: now,
	})
	return &RoomMutationResult{Room: room, Plan: plan}, nil
}

func (uc *floorPlanUseCaseImpl) SyncChanges(ctx context.Context, req SyncChangesRequest) (*SyncChangesResult, error) {
	var (
		res floorplan.SyncResult
		now time.Time
	)
	_, err := uc.mutate(ctx, "sync", req.PlanID, func(_ context.Context, p *floorplan.FloorPlan) (bool, error) {
		now = uc.clock.Now()
		r, err := p.ApplyChanges(req.Changes, req.BatchKey, uc.settings.DefaultBookingDuration, now)
		if err != nil {
			return false, err
		}
		res = r
		return r.Applied > 0, nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveSyncBatch(res.Applied, res.Skipped)
	if res.Replayed {
		uc.slogger.Info("sync batch already applied", "plan_id", req.PlanID, "batch_key", req.BatchKey)
		return &SyncChangesResult{SyncResult: res}, nil
	}
	if res.Applied > 0 {
		uc.publish(ctx, shared.PlanEvent{Kind: shared.EventPlanSynced, PlanID: req.PlanID, Version: res.Version, OccurredAt: now})
	}
	return &SyncChangesResult{SyncResult: res}, nil
}

// mutate runs fn inside the plan's critical section and records the outcome.
func (uc *floorPlanUseCaseImpl) mutate(ctx context.Context, op string, planID uuid.UUID, fn shared.MutateFunc) (*floorplan.FloorPlan, error) {
	start := time.Now()
	plan, err := uc.uow.Within(ctx, planID, fn)
	uc.observe(op, start, err)
	if err != nil {
		var conflict *floorplan.ConflictError
		if errors.As(err, &conflict) {
			uc.slogger.Warn("version conflict",
				"op", op,
				"plan_id", planID,
				"current_version", conflict.CurrentVersion)
		}
		return nil, err
	}

	uc.slogger.Info("floor plan mutated", "op", op, "plan_id", planID, "version", plan.Version)
	return plan, nil
}

func (uc *floorPlanUseCaseImpl) observe(op string, start time.Time, err error) {
	uc.metrics.ObserveMutation(op, outcomeOf(err), time.Since(start))
}

func (uc *floorPlanUseCaseImpl) publish(ctx context.Context, event shared.PlanEvent) {
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.slogger.Warn("plan event dropped", "kind", event.Kind, "plan_id", event.PlanID, "error", err.Error())
	}
}

func outcomeOf(err error) shared.MutationOutcome {
	switch {
	case err == nil:
		return shared.OutcomeApplied
	case errors.Is(err, floorplan.ErrVersionConflict):
		return shared.OutcomeConflict
	case isDomainRejection(err):
		return shared.OutcomeRejected
	default:
		return shared.OutcomeFailed
	}
}

func isDomainRejection(err error) bool {
	for _, target := range []error{
		floorplan.ErrPlanNotFound,
		floorplan.ErrRoomNotFound,
		floorplan.ErrAlreadyBooked,
		floorplan.ErrNotBooked,
		floorplan.ErrForbidden,
		floorplan.ErrInvalidBatch,
		floorplan.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
