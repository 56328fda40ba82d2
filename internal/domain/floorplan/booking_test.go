//go:build unit

package floorplan_test

import (
	"testing"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRoom(t *testing.T) {
	now := builder.DefaultNow.Add(30 * time.Minute)

	t.Run("books and bumps version", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		require.NoError(t, err)
		holder := uuid.New()

		room, err := plan.BookRoom(102, &holder, time.Hour, now)
		require.NoError(t, err)

		assert.True(t, room.Booked)
		assert.Equal(t, holder, *room.BookedBy)
		assert.Equal(t, now.Add(time.Hour), *room.BookedUntil)
		assert.Equal(t, now, *room.LastBookedAt)
		assert.Equal(t, 3, room.BookingCount)
		assert.Equal(t, 2, plan.Version)
		assert.Equal(t, now, plan.LastModifiedAt)
	})

	t.Run("anonymous booking", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		require.NoError(t, err)

		room, err := plan.BookRoom(101, nil, time.Hour, now)
		require.NoError(t, err)
		assert.True(t, room.Booked)
		assert.Nil(t, room.BookedBy)
	})

	t.Run("returned room is detached", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		require.NoError(t, err)
		holder := uuid.New()

		room, err := plan.BookRoom(101, &holder, time.Hour, now)
		require.NoError(t, err)
		*room.BookedUntil = time.Time{}

		stored, _ := plan.Room(101)
		assert.False(t, stored.BookedUntil.IsZero())
	})

	t.Run("already booked leaves plan untouched", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().WithBookedRoom(301, 4, uuid.New(), time.Hour).BuildDomain()
		require.NoError(t, err)
		before := plan.Clone()

		_, err = plan.BookRoom(301, nil, time.Hour, now)
		require.ErrorIs(t, err, floorplan.ErrAlreadyBooked)
		assert.Equal(t, before, plan)
	})

	t.Run("unknown room", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = plan.BookRoom(999, nil, time.Hour, now)
		require.ErrorIs(t, err, floorplan.ErrRoomNotFound)
		assert.Equal(t, floorplan.InitialVersion, plan.Version)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = plan.BookRoom(101, nil, 0, now)
		require.ErrorIs(t, err, floorplan.ErrValidation)
		assert.Equal(t, floorplan.InitialVersion, plan.Version)
	})
}

func TestUnbookRoom(t *testing.T) {
	now := builder.DefaultNow.Add(10 * time.Minute)
	holder := uuid.New()

	newPlan := func(t *testing.T) *floorplan.FloorPlan {
		t.Helper()
		plan, err := builder.NewFloorPlanBuilder().WithBookedRoom(301, 4, holder, time.Hour).BuildDomain()
		require.NoError(t, err)
		return plan
	}

	t.Run("holder releases", func(t *testing.T) {
		plan := newPlan(t)

		room, err := plan.UnbookRoom(301, &holder, now)
		require.NoError(t, err)
		assert.False(t, room.Booked)
		assert.Nil(t, room.BookedBy)
		assert.Nil(t, room.BookedUntil)
		assert.Equal(t, 1, room.BookingCount)
		assert.Equal(t, 2, plan.Version)
	})

	t.Run("override without requester", func(t *testing.T) {
		plan := newPlan(t)

		_, err := plan.UnbookRoom(301, nil, now)
		require.NoError(t, err)
		assert.Equal(t, 2, plan.Version)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		plan := newPlan(t)
		before := plan.Clone()
		intruder := uuid.New()

		_, err := plan.UnbookRoom(301, &intruder, now)
		require.ErrorIs(t, err, floorplan.ErrForbidden)
		assert.Equal(t, before, plan)
	})

	t.Run("anonymous booking can be released by anyone", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		require.NoError(t, err)
		_, err = plan.BookRoom(101, nil, time.Hour, now)
		require.NoError(t, err)
		someone := uuid.New()

		_, err = plan.UnbookRoom(101, &someone, now)
		require.NoError(t, err)
	})

	t.Run("not booked", func(t *testing.T) {
		plan := newPlan(t)

		_, err := plan.UnbookRoom(101, &holder, now)
		require.ErrorIs(t, err, floorplan.ErrNotBooked)
		assert.Equal(t, floorplan.InitialVersion, plan.Version)
	})

	t.Run("unknown room", func(t *testing.T) {
		plan := newPlan(t)

		_, err := plan.UnbookRoom(999, &holder, now)
		require.ErrorIs(t, err, floorplan.ErrRoomNotFound)
	})

	t.Run("book then unbook keeps the count", func(t *testing.T) {
		plan, err := builder.NewFloorPlanBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = plan.BookRoom(101, &holder, time.Hour, now)
		require.NoError(t, err)
		room, err := plan.UnbookRoom(101, &holder, now.Add(time.Minute))
		require.NoError(t, err)

		assert.Nil(t, room.BookedBy)
		assert.Nil(t, room.BookedUntil)
		assert.Equal(t, 1, room.BookingCount)
		assert.Equal(t, now, *room.LastBookedAt)
		assert.Equal(t, 3, plan.Version)
	})
}
