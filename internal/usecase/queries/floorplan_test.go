//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/infra"
	"floorplan-service/internal/pkg/clock"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/usecase/queries"
	"floorplan-service/tests/common/builder"
	sharedmock "floorplan-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type FloorPlanQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *sharedmock.MockFloorPlanRepository
	clock    *clock.MockClock
	queries  queries.FloorPlanQueries
	ctx      context.Context
}

func (s *FloorPlanQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = sharedmock.NewMockFloorPlanRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.DefaultNow)
	s.queries = queries.NewFloorPlanQueries(s.mockRepo, s.clock)
	s.ctx = context.Background()
}

func (s *FloorPlanQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFloorPlanQueriesSuite(t *testing.T) {
	suite.Run(t, new(FloorPlanQueriesTestSuite))
}

func (s *FloorPlanQueriesTestSuite) TestGetPlan() {
	s.Run("found", func() {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockRepo.EXPECT().FindByID(gomock.Any(), plan.ID).Return(plan, nil)

		actual, err := s.queries.GetPlan(s.ctx, plan.ID)
		s.Require().NoError(err)
		s.Equal(plan, actual)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(discard, infra.KindNotFound, "floor plan not found", nil))

		_, err := s.queries.GetPlan(s.ctx, id)
		s.ErrorIs(err, floorplan.ErrPlanNotFound)
	})

	s.Run("store failure", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(discard, infra.KindDBFailure, "query failed", errors.New("conn reset")))

		_, err := s.queries.GetPlan(s.ctx, id)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *FloorPlanQueriesTestSuite) TestListPlans() {
	a, err := builder.NewFloorPlanBuilder().BuildDomain()
	s.Require().NoError(err)
	b, err := builder.NewFloorPlanBuilder().With(func(b *builder.FloorPlanBuilder) { b.Name = "Annex" }).BuildDomain()
	s.Require().NoError(err)
	s.mockRepo.EXPECT().List(gomock.Any()).Return([]*floorplan.FloorPlan{a, b}, nil)

	plans, err := s.queries.ListPlans(s.ctx)
	s.Require().NoError(err)
	s.Len(plans, 2)
	s.Equal("Annex", plans[1].Name)
}

func (s *FloorPlanQueriesTestSuite) TestSuggestRoom() {
	plan, err := builder.NewFloorPlanBuilder().WithRooms(
		floorplan.Room{RoomNumber: 1, Capacity: 10, BookingCount: 5},
		floorplan.Room{RoomNumber: 2, Capacity: 12, BookingCount: 1},
		floorplan.Room{RoomNumber: 3, Capacity: 12, BookingCount: 0},
	).BuildDomain()
	s.Require().NoError(err)
	s.mockRepo.EXPECT().FindByID(gomock.Any(), plan.ID).Return(plan, nil).AnyTimes()

	s.Run("tightest fit", func() {
		room, err := s.queries.SuggestRoom(s.ctx, plan.ID, 10)
		s.Require().NoError(err)
		s.Equal(1, room.RoomNumber)
	})

	s.Run("fairness tiebreak", func() {
		room, err := s.queries.SuggestRoom(s.ctx, plan.ID, 12)
		s.Require().NoError(err)
		s.Equal(3, room.RoomNumber)
	})

	s.Run("nothing fits", func() {
		_, err := s.queries.SuggestRoom(s.ctx, plan.ID, 50)
		s.ErrorIs(err, floorplan.ErrNoRoomAvailable)
	})

	s.Run("does not reserve", func() {
		_, err := s.queries.SuggestRoom(s.ctx, plan.ID, 10)
		s.Require().NoError(err)
		s.False(plan.Rooms[0].Booked)
		s.Equal(floorplan.InitialVersion, plan.Version)
	})
}

func (s *FloorPlanQueriesTestSuite) TestListUserBookings() {
	me := uuid.New()
	first, err := builder.NewFloorPlanBuilder().
		WithBookedRoom(301, 4, me, time.Hour).
		WithBookedRoom(302, 4, uuid.New(), time.Hour).
		BuildDomain()
	s.Require().NoError(err)
	second, err := builder.NewFloorPlanBuilder().
		With(func(b *builder.FloorPlanBuilder) { b.Name = "Annex" }).
		WithBookedRoom(7, 2, me, 3*time.Hour).
		BuildDomain()
	s.Require().NoError(err)

	s.Run("lists only the user's rooms and flags expiry", func() {
		s.clock.Set(builder.DefaultNow.Add(2 * time.Hour))
		s.mockRepo.EXPECT().ListByBookedUser(gomock.Any(), me).Return([]*floorplan.FloorPlan{first, second}, nil)

		views, err := s.queries.ListUserBookings(s.ctx, me)
		s.Require().NoError(err)
		s.Require().Len(views, 2)

		s.Equal(first.ID, views[0].PlanID)
		s.Equal(301, views[0].RoomNumber)
		s.True(views[0].Expired)

		s.Equal("Annex", views[1].PlanName)
		s.Equal(7, views[1].RoomNumber)
		s.False(views[1].Expired)
	})

	s.Run("no bookings yields an empty list", func() {
		s.mockRepo.EXPECT().ListByBookedUser(gomock.Any(), gomock.Any()).Return(nil, nil)

		views, err := s.queries.ListUserBookings(s.ctx, uuid.New())
		s.Require().NoError(err)
		s.NotNil(views)
		s.Empty(views)
	})
}
