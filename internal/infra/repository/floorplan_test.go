//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/infra"
	"floorplan-service/internal/infra/repository"
	"floorplan-service/tests/common/builder"
	repositorymock "floorplan-service/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func setup(t *testing.T) (*repositorymock.MockFloorPlanQueries, *mockDBTX, *repository.FloorPlanRepository) {
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockFloorPlanQueries(ctrl)
	mockDB := &mockDBTX{}
	return mockQueries, mockDB, repository.NewFloorPlanRepository(mockQueries, mockDB, discard)
}

func rowOf(t *testing.T, p *floorplan.FloorPlan) repository.FloorPlanRow {
	t.Helper()
	seats, err := json.Marshal(p.Seats)
	require.NoError(t, err)
	rooms, err := json.Marshal(p.Rooms)
	require.NoError(t, err)
	return repository.FloorPlanRow{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Version:        int32(p.Version),
		Seats:          seats,
		Rooms:          rooms,
		AppliedBatches: []byte("[]"),
		LastModifiedAt: p.LastModifiedAt,
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: decodes JSONB documents", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		want, err := builder.NewFloorPlanBuilder().WithBookedRoom(201, 6, uuid.New(), time.Hour).BuildDomain()
		require.NoError(t, err)
		mockQueries.EXPECT().GetFloorPlan(ctx, mockDB, want.ID).Return(rowOf(t, want), nil)

		got, err := repo.FindByID(ctx, want.ID)

		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FindByID mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: missing row maps to NOT_FOUND", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		id := uuid.New()
		mockQueries.EXPECT().GetFloorPlan(ctx, mockDB, id).Return(repository.FloorPlanRow{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt document maps to DB_FAILURE", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		id := uuid.New()
		mockQueries.EXPECT().GetFloorPlan(ctx, mockDB, id).Return(repository.FloorPlanRow{
			ID: id, Version: 1, Seats: []byte("{"), Rooms: []byte("[]"),
		}, nil)

		_, err := repo.FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Create Tests
// =============================================================================

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		insertErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: plan inserted"},
		{
			name:       "error: duplicate id",
			insertErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database error occurs",
			insertErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries, mockDB, repo := setup(t)
			plan, err := builder.NewFloorPlanBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().InsertFloorPlan(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, row repository.FloorPlanRow) error {
					assert.Equal(t, plan.ID, row.ID)
					assert.JSONEq(t, "[]", string(row.AppliedBatches))
					return tc.insertErr
				})

			err = repo.Create(ctx, plan)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// Replace Tests
// =============================================================================

func TestRepository_Replace(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockFloorPlanQueries, *mockDBTX, uuid.UUID)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: version matched",
			setupMock: func(m *repositorymock.MockFloorPlanQueries, db *mockDBTX, id uuid.UUID) {
				m.EXPECT().ReplaceFloorPlan(ctx, db, gomock.Any(), int32(3)).Return(int64(1), nil)
			},
		},
		{
			name: "error: version moved",
			setupMock: func(m *repositorymock.MockFloorPlanQueries, db *mockDBTX, id uuid.UUID) {
				m.EXPECT().ReplaceFloorPlan(ctx, db, gomock.Any(), int32(3)).Return(int64(0), nil)
				m.EXPECT().FloorPlanExists(ctx, db, id).Return(true, nil)
			},
			expectKind: infra.KindVersionMismatch,
		},
		{
			name: "error: plan deleted",
			setupMock: func(m *repositorymock.MockFloorPlanQueries, db *mockDBTX, id uuid.UUID) {
				m.EXPECT().ReplaceFloorPlan(ctx, db, gomock.Any(), int32(3)).Return(int64(0), nil)
				m.EXPECT().FloorPlanExists(ctx, db, id).Return(false, nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(m *repositorymock.MockFloorPlanQueries, db *mockDBTX, id uuid.UUID) {
				m.EXPECT().ReplaceFloorPlan(ctx, db, gomock.Any(), int32(3)).Return(int64(0), errors.New("timeout"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries, mockDB, repo := setup(t)
			plan, err := builder.NewFloorPlanBuilder().BuildDomain()
			require.NoError(t, err)
			plan.Version = 4
			tc.setupMock(mockQueries, mockDB, plan.ID)

			err = repo.Replace(ctx, plan, 3)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// ListByBookedUser / Delete Tests
// =============================================================================

func TestRepository_ListByBookedUser(t *testing.T) {
	ctx := context.Background()
	mockQueries, mockDB, repo := setup(t)
	holder := uuid.New()
	plan, err := builder.NewFloorPlanBuilder().WithBookedRoom(301, 4, holder, time.Hour).BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().ListFloorPlansContainingRooms(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, filter []byte) ([]repository.FloorPlanRow, error) {
			assert.JSONEq(t, `[{"booked":true,"bookedBy":"`+holder.String()+`"}]`, string(filter))
			return []repository.FloorPlanRow{rowOf(t, plan)}, nil
		})

	got, err := repo.ListByBookedUser(ctx, holder)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, plan.ID, got[0].ID)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		id := uuid.New()
		mockQueries.EXPECT().DeleteFloorPlan(ctx, mockDB, id).Return(int64(1), nil)
		assert.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("error: plan not found", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		id := uuid.New()
		mockQueries.EXPECT().DeleteFloorPlan(ctx, mockDB, id).Return(int64(0), nil)
		assert.True(t, infra.IsKind(repo.Delete(ctx, id), infra.KindNotFound))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}
