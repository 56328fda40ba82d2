package offline

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/pkg/clock"
	"floorplan-service/internal/pkg/idgen"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const timeLayout = time.RFC3339Nano

type SQLiteQueue struct {
	db    *sql.DB
	clock clock.Clock
	ids   idgen.Generator
}

// OpenSQLiteQueue opens (creating if needed) the queue database at path and
// applies its schema.
func OpenSQLiteQueue(path string, clk clock.Clock, ids idgen.Generator) (*SQLiteQueue, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open offline queue: %w", err)
	}
	// a single writer keeps append order and avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping offline queue: %w", err)
	}
	if err := migrateQueue(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteQueue{db: db, clock: clk, ids: ids}, nil
}

func migrateQueue(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open offline migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to init offline migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to init offline migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply offline migrations: %w", err)
	}
	return nil
}

func (q *SQLiteQueue) Close() error {
	return q.db.Close()
}

func (q *SQLiteQueue) Enqueue(ctx context.Context, planID uuid.UUID, changes []floorplan.Change) (Entry, error) {
	return q.EnqueueWithID(ctx, q.ids.New(), planID, changes)
}

func (q *SQLiteQueue) EnqueueWithID(ctx context.Context, id, planID uuid.UUID, changes []floorplan.Change) (Entry, error) {
	if id == uuid.Nil {
		return Entry{}, ErrNilEntryID
	}
	if len(changes) == 0 {
		return Entry{}, ErrEmptyChangeList
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode changes: %w", err)
	}

	e := Entry{
		ID:        id,
		PlanID:    planID,
		Changes:   changes,
		Status:    StatusPending,
		CreatedAt: q.clock.Now(),
	}
	_, err = q.db.ExecContext(ctx,
		`INSERT INTO offline_entries (id, plan_id, changes, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID.String(), e.PlanID.String(), string(raw), string(e.Status), e.CreatedAt.Format(timeLayout))
	if err != nil {
		return Entry{}, fmt.Errorf("failed to enqueue offline entry: %w", err)
	}
	return e, nil
}

func (q *SQLiteQueue) Pending(ctx context.Context) ([]Entry, error) {
	return q.query(ctx, `WHERE status = ? ORDER BY seq`, string(StatusPending))
}

func (q *SQLiteQueue) List(ctx context.Context) ([]Entry, error) {
	return q.query(ctx, `ORDER BY seq`)
}

func (q *SQLiteQueue) MarkAttempt(ctx context.Context, id uuid.UUID) error {
	return q.update(ctx, `UPDATE offline_entries SET attempts = attempts + 1 WHERE id = ? AND status = ?`,
		id.String(), string(StatusPending))
}

func (q *SQLiteQueue) Ack(ctx context.Context, id uuid.UUID) error {
	return q.update(ctx, `DELETE FROM offline_entries WHERE id = ? AND status = ?`,
		id.String(), string(StatusPending))
}

func (q *SQLiteQueue) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	return q.update(ctx, `UPDATE offline_entries SET status = ?, reason = ? WHERE id = ? AND status = ?`,
		string(StatusRejected), reason, id.String(), string(StatusPending))
}

// Clear empties the queue, refusing while any entry is still pending.
func (q *SQLiteQueue) Clear(ctx context.Context) error {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var pending int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM offline_entries WHERE status = ?`, string(StatusPending)).Scan(&pending); err != nil {
		return fmt.Errorf("failed to count pending entries: %w", err)
	}
	if pending > 0 {
		return fmt.Errorf("%w: %d", ErrPendingEntries, pending)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM offline_entries`); err != nil {
		return fmt.Errorf("failed to clear offline queue: %w", err)
	}
	return tx.Commit()
}

func (q *SQLiteQueue) update(ctx context.Context, stmt string, args ...any) error {
	res, err := q.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to update offline entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (q *SQLiteQueue) query(ctx context.Context, clause string, args ...any) ([]Entry, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, plan_id, changes, status, reason, attempts, created_at FROM offline_entries `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read offline queue: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e                          Entry
		id, planID, raw, createdAt string
		status                     string
	)
	if err := rows.Scan(&id, &planID, &raw, &status, &e.Reason, &e.Attempts, &createdAt); err != nil {
		return Entry{}, fmt.Errorf("failed to scan offline entry: %w", err)
	}

	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return Entry{}, fmt.Errorf("corrupt entry id %q: %w", id, err)
	}
	if e.PlanID, err = uuid.Parse(planID); err != nil {
		return Entry{}, fmt.Errorf("corrupt plan id %q: %w", planID, err)
	}
	if err := json.Unmarshal([]byte(raw), &e.Changes); err != nil {
		return Entry{}, fmt.Errorf("corrupt changes for entry %s: %w", id, err)
	}
	if e.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return Entry{}, fmt.Errorf("corrupt timestamp for entry %s: %w", id, err)
	}
	e.Status = Status(status)
	return e, nil
}
