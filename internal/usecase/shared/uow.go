package shared

import (
	"context"

	"floorplan-service/internal/domain/floorplan"

	"github.com/google/uuid"
)

// MutateFunc edits a private copy of the plan. Returning persist=false skips
// the write, e.g. for a replayed sync batch.
type MutateFunc func(ctx context.Context, plan *floorplan.FloorPlan) (persist bool, err error)

type UnitOfWork interface {
	// Within: per-plan critical section: lock, load, mutate, conditional replace, with conflict retry
	Within(ctx context.Context, planID uuid.UUID, fn MutateFunc) (*floorplan.FloorPlan, error)
	// Plans: direct repository access for reads and whole-plan create/delete
	Plans() FloorPlanRepository
}
