package repository

import (
	"context"
	"errors"
	"log/slog"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/infra"
	"floorplan-service/internal/infra/db"
	"floorplan-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// FloorPlanRepository stores each plan as one row whose seats and rooms are
// JSONB documents, replaced wholesale under a version condition.
type FloorPlanRepository struct {
	queries FloorPlanQueries
	db      db.DBTX
	slogger *slog.Logger
}

func NewFloorPlanRepository(queries FloorPlanQueries, dbtx db.DBTX, slogger *slog.Logger) *FloorPlanRepository {
	return &FloorPlanRepository{
		queries: queries,
		db:      dbtx,
		slogger: slogger,
	}
}

var _ shared.FloorPlanRepository = (*FloorPlanRepository)(nil)

func (r *FloorPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error) {
	row, err := r.queries.GetFloorPlan(ctx, r.db, id)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(r.slogger, infra.KindNotFound, "floor plan not found", nil)
		}
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to load floor plan", err)
	}
	return r.decode(row)
}

func (r *FloorPlanRepository) List(ctx context.Context) ([]*floorplan.FloorPlan, error) {
	rows, err := r.queries.ListFloorPlans(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to list floor plans", err)
	}
	return r.decodeAll(rows)
}

func (r *FloorPlanRepository) ListByBookedUser(ctx context.Context, userID uuid.UUID) ([]*floorplan.FloorPlan, error) {
	filter, err := roomHolderFilter(userID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to build room filter", err)
	}
	rows, err := r.queries.ListFloorPlansContainingRooms(ctx, r.db, filter)
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to list booked floor plans", err)
	}
	return r.decodeAll(rows)
}

func (r *FloorPlanRepository) Create(ctx context.Context, plan *floorplan.FloorPlan) error {
	row, err := floorPlanToRow(plan)
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to encode floor plan", err)
	}
	if err := r.queries.InsertFloorPlan(ctx, r.db, row); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr(r.slogger, infra.KindDuplicateKey, "floor plan already exists", err)
		}
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to create floor plan", err)
	}
	return nil
}

func (r *FloorPlanRepository) Replace(ctx context.Context, plan *floorplan.FloorPlan, expectedVersion int) error {
	row, err := floorPlanToRow(plan)
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to encode floor plan", err)
	}

	// #nosec G115 -- plan versions stay far below int32 overflow
	affected, err := r.queries.ReplaceFloorPlan(ctx, r.db, row, int32(expectedVersion))
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to replace floor plan", err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.queries.FloorPlanExists(ctx, r.db, plan.ID)
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to check floor plan", err)
	}
	if !exists {
		return infra.WrapRepoErr(r.slogger, infra.KindNotFound, "floor plan not found", nil)
	}
	return infra.WrapRepoErr(r.slogger, infra.KindVersionMismatch, "floor plan version moved", nil)
}

func (r *FloorPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteFloorPlan(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to delete floor plan", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.slogger, infra.KindNotFound, "floor plan not found", nil)
	}
	return nil
}

func (r *FloorPlanRepository) decode(row FloorPlanRow) (*floorplan.FloorPlan, error) {
	p, err := rowToFloorPlan(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "corrupt floor plan document", err)
	}
	return p, nil
}

func (r *FloorPlanRepository) decodeAll(rows []FloorPlanRow) ([]*floorplan.FloorPlan, error) {
	out := make([]*floorplan.FloorPlan, 0, len(rows))
	for _, row := range rows {
		p, err := r.decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
