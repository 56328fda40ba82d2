//go:build unit || e2e

// Package dbtest seeds and inspects the floor_plans table directly.
package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"floorplan-service/internal/domain/floorplan"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertFloorPlan writes p as stored, bypassing the repository and its
// version check.
func InsertFloorPlan(t *testing.T, db DBLike, p *floorplan.FloorPlan) {
	t.Helper()

	batches := p.AppliedBatches
	if batches == nil {
		batches = []uuid.UUID{}
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO floor_plans (id, name, description, version, seats, rooms, applied_batches, last_modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.Description, p.Version,
		mustJSON(t, p.Seats), mustJSON(t, p.Rooms), mustJSON(t, batches), p.LastModifiedAt)
	require.NoError(t, err)
}

func PlanVersion(t *testing.T, db DBLike, p *floorplan.FloorPlan) int {
	t.Helper()

	var version int
	err := db.QueryRow(context.Background(), "SELECT version FROM floor_plans WHERE id = $1", p.ID).Scan(&version)
	require.NoError(t, err)
	return version
}

// StoredRooms decodes the rooms column of a plan.
func StoredRooms(t *testing.T, db DBLike, id uuid.UUID) []floorplan.Room {
	t.Helper()

	var raw []byte
	require.NoError(t, db.QueryRow(context.Background(), "SELECT rooms FROM floor_plans WHERE id = $1", id).Scan(&raw))
	var rooms []floorplan.Room
	require.NoError(t, json.Unmarshal(raw, &rooms))
	return rooms
}

// ResetDB truncates every public table except the migration bookkeeping.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'schema_migrations'`)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	if len(tables) == 0 {
		return nil
	}
	_, err = pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
