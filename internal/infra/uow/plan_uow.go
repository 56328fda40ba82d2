package uow

import (
	"context"
	"log/slog"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/infra"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultBackoffBase = 20 * time.Millisecond

// PlanUoW runs each mutation as lock, load, mutate, conditional replace.
// The lock serializes writers sharing a locker; the conditional replace
// catches any writer that bypassed it, in which case the mutation is re-run
// against the fresh state.
type PlanUoW struct {
	repo       shared.FloorPlanRepository
	locker     shared.PlanLocker
	metrics    shared.MetricsRecorder
	maxRetries int
	base       time.Duration
	slogger    *slog.Logger
}

func NewPlanUoW(repo shared.FloorPlanRepository, locker shared.PlanLocker, metrics shared.MetricsRecorder, maxRetries int, slogger *slog.Logger) *PlanUoW {
	return &PlanUoW{
		repo:       repo,
		locker:     locker,
		metrics:    metrics,
		maxRetries: maxRetries,
		base:       defaultBackoffBase,
		slogger:    slogger,
	}
}

var _ shared.UnitOfWork = (*PlanUoW)(nil)

func (u *PlanUoW) Plans() shared.FloorPlanRepository {
	return u.repo
}

func (u *PlanUoW) Within(ctx context.Context, planID uuid.UUID, fn shared.MutateFunc) (*floorplan.FloorPlan, error) {
	unlock, err := u.locker.Lock(ctx, planID)
	if err != nil {
		if infra.IsKind(err, infra.KindLockTimeout) {
			return nil, errs.Mark(err, errs.ErrLockUnavailable)
		}
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer unlock()

	policy := shared.RetryPolicy{
		MaxRetries: u.maxRetries,
		Base:       u.base,
		Retryable: func(err error) bool {
			return infra.IsKind(err, infra.KindVersionMismatch)
		},
		OnRetry: func(attempt int, err error) {
			u.metrics.ObserveStoreRetry()
			u.slogger.Warn("plan changed underneath the lock, retrying",
				"plan_id", planID,
				"attempt", attempt+1)
		},
	}

	plan, err := shared.RunWithRetry(ctx, policy, func(int) (*floorplan.FloorPlan, error) {
		return u.attempt(ctx, planID, fn)
	})
	if err != nil {
		return nil, translate(err)
	}
	return plan, nil
}

func (u *PlanUoW) attempt(ctx context.Context, planID uuid.UUID, fn shared.MutateFunc) (*floorplan.FloorPlan, error) {
	plan, err := u.repo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	expected := plan.Version

	persist, err := fn(ctx, plan)
	if err != nil {
		return nil, err
	}
	if !persist {
		return plan, nil
	}

	if err := u.repo.Replace(ctx, plan, expected); err != nil {
		return nil, err
	}
	return plan, nil
}

// translate maps repository kinds to the usecase taxonomy. Domain errors pass through.
func translate(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return floorplan.ErrPlanNotFound
	case infra.IsKind(err, infra.KindVersionMismatch):
		return errs.Mark(err, errs.ErrRetriesExhausted)
	case infra.IsKind(err, infra.KindDBFailure), infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
