package repository

import (
	"context"
	"errors"
	"time"

	"floorplan-service/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FloorPlanRow mirrors one row of floor_plans. JSONB columns stay raw.
type FloorPlanRow struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Version        int32
	Seats          []byte
	Rooms          []byte
	AppliedBatches []byte
	LastModifiedAt time.Time
}

var errNoRows = pgx.ErrNoRows

type FloorPlanQueries interface {
	GetFloorPlan(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (FloorPlanRow, error)
	ListFloorPlans(ctx context.Context, dbtx db.DBTX) ([]FloorPlanRow, error)
	ListFloorPlansContainingRooms(ctx context.Context, dbtx db.DBTX, roomsFilter []byte) ([]FloorPlanRow, error)
	InsertFloorPlan(ctx context.Context, dbtx db.DBTX, row FloorPlanRow) error
	// ReplaceFloorPlan returns the number of rows updated; zero means the id is
	// missing or its version moved.
	ReplaceFloorPlan(ctx context.Context, dbtx db.DBTX, row FloorPlanRow, expectedVersion int32) (int64, error)
	FloorPlanExists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
	DeleteFloorPlan(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error)
}

type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const floorPlanColumns = `id, name, description, version, seats, rooms, applied_batches, last_modified_at`

const getFloorPlan = `SELECT ` + floorPlanColumns + ` FROM floor_plans WHERE id = $1`

func (q *Queries) GetFloorPlan(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (FloorPlanRow, error) {
	return scanFloorPlan(dbtx.QueryRow(ctx, getFloorPlan, id))
}

const listFloorPlans = `SELECT ` + floorPlanColumns + ` FROM floor_plans ORDER BY created_at, id`

func (q *Queries) ListFloorPlans(ctx context.Context, dbtx db.DBTX) ([]FloorPlanRow, error) {
	rows, err := dbtx.Query(ctx, listFloorPlans)
	if err != nil {
		return nil, err
	}
	return collectFloorPlans(rows)
}

const listFloorPlansContainingRooms = `SELECT ` + floorPlanColumns + `
FROM floor_plans
WHERE rooms @> $1::jsonb
ORDER BY created_at, id`

func (q *Queries) ListFloorPlansContainingRooms(ctx context.Context, dbtx db.DBTX, roomsFilter []byte) ([]FloorPlanRow, error) {
	rows, err := dbtx.Query(ctx, listFloorPlansContainingRooms, string(roomsFilter))
	if err != nil {
		return nil, err
	}
	return collectFloorPlans(rows)
}

const insertFloorPlan = `INSERT INTO floor_plans (` + floorPlanColumns + `)
VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7::jsonb, $8)`

func (q *Queries) InsertFloorPlan(ctx context.Context, dbtx db.DBTX, row FloorPlanRow) error {
	_, err := dbtx.Exec(ctx, insertFloorPlan,
		row.ID, row.Name, row.Description, row.Version,
		string(row.Seats), string(row.Rooms), string(row.AppliedBatches), row.LastModifiedAt)
	return err
}

const replaceFloorPlan = `UPDATE floor_plans
SET name = $2,
    description = $3,
    version = $4,
    seats = $5::jsonb,
    rooms = $6::jsonb,
    applied_batches = $7::jsonb,
    last_modified_at = $8
WHERE id = $1 AND version = $9`

func (q *Queries) ReplaceFloorPlan(ctx context.Context, dbtx db.DBTX, row FloorPlanRow, expectedVersion int32) (int64, error) {
	tag, err := dbtx.Exec(ctx, replaceFloorPlan,
		row.ID, row.Name, row.Description, row.Version,
		string(row.Seats), string(row.Rooms), string(row.AppliedBatches), row.LastModifiedAt,
		expectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const floorPlanExists = `SELECT EXISTS (SELECT 1 FROM floor_plans WHERE id = $1)`

func (q *Queries) FloorPlanExists(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, floorPlanExists, id).Scan(&exists)
	return exists, err
}

const deleteFloorPlan = `DELETE FROM floor_plans WHERE id = $1`

func (q *Queries) DeleteFloorPlan(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, deleteFloorPlan, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanFloorPlan(row pgx.Row) (FloorPlanRow, error) {
	var r FloorPlanRow
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Version,
		&r.Seats, &r.Rooms, &r.AppliedBatches, &r.LastModifiedAt)
	return r, err
}

func collectFloorPlans(rows pgx.Rows) ([]FloorPlanRow, error) {
	defer rows.Close()
	var out []FloorPlanRow
	for rows.Next() {
		r, err := scanFloorPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func isNoRows(err error) bool {
	return errors.Is(err, errNoRows)
}
