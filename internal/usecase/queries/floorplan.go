package queries

import (
	"context"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/infra"
	"floorplan-service/internal/pkg/clock"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingView is one room currently held by a user.
type BookingView struct {
	PlanID       uuid.UUID
	PlanName     string
	RoomNumber   int
	Capacity     int
	BookedUntil  *time.Time
	LastBookedAt *time.Time
	// Expired is informational; expired bookings are not released automatically.
	Expired bool
}

type FloorPlanQueries interface {
	GetPlan(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error)
	ListPlans(ctx context.Context) ([]*floorplan.FloorPlan, error)
	SuggestRoom(ctx context.Context, id uuid.UUID, participants int) (floorplan.Room, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingView, error)
}

type floorPlanQueriesImpl struct {
	repo  shared.FloorPlanRepository
	clock clock.Clock
}

func NewFloorPlanQueries(repo shared.FloorPlanRepository, clk clock.Clock) FloorPlanQueries {
	return &floorPlanQueriesImpl{repo: repo, clock: clk}
}

func (q *floorPlanQueriesImpl) GetPlan(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error) {
	plan, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return plan, nil
}

func (q *floorPlanQueriesImpl) ListPlans(ctx context.Context) ([]*floorplan.FloorPlan, error) {
	plans, err := q.repo.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return plans, nil
}

// SuggestRoom is a pure read: the suggested room is not reserved.
func (q *floorPlanQueriesImpl) SuggestRoom(ctx context.Context, id uuid.UUID, participants int) (floorplan.Room, error) {
	plan, err := q.GetPlan(ctx, id)
	if err != nil {
		return floorplan.Room{}, err
	}
	return floorplan.SuggestRoom(plan.Rooms, participants)
}

func (q *floorPlanQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingView, error) {
	plans, err := q.repo.ListByBookedUser(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}

	now := q.clock.Now()
	views := []BookingView{}
	for _, p := range plans {
		for _, r := range p.RoomsBookedBy(userID) {
			views = append(views, BookingView{
				PlanID:       p.ID,
				PlanName:     p.Name,
				RoomNumber:   r.RoomNumber,
				Capacity:     r.Capacity,
				BookedUntil:  r.BookedUntil,
				LastBookedAt: r.LastBookedAt,
				Expired:      r.IsExpired(now),
			})
		}
	}
	return views, nil
}

func translate(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return floorplan.ErrPlanNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
