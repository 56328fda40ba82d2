//go:build unit || e2e

package builder

import (
	"time"

	"floorplan-service/internal/domain/floorplan"
	reqdto "floorplan-service/internal/handler/dto/request"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

type FloorPlanBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Seats       []floorplan.Seat
	Rooms       []floorplan.Room
	Version     int
	Now         time.Time
}

func NewFloorPlanBuilder() *FloorPlanBuilder {
	return &FloorPlanBuilder{
		ID:          uuid.New(),
		Name:        "Head Office 3F",
		Description: "Open floor with meeting rooms",
		Seats: []floorplan.Seat{
			{SeatNumber: 1},
			{SeatNumber: 2, Occupied: true},
			{SeatNumber: 3},
		},
		Rooms: []floorplan.Room{
			{RoomNumber: 101, Capacity: 4},
			{RoomNumber: 102, Capacity: 8, BookingCount: 2},
		},
		Version: floorplan.InitialVersion,
		Now:     DefaultNow,
	}
}

func (b *FloorPlanBuilder) With(mutate func(*FloorPlanBuilder)) *FloorPlanBuilder {
	mutate(b)
	return b
}

func (b *FloorPlanBuilder) WithRooms(rooms ...floorplan.Room) *FloorPlanBuilder {
	b.Rooms = rooms
	return b
}

func (b *FloorPlanBuilder) WithSeats(seats ...floorplan.Seat) *FloorPlanBuilder {
	b.Seats = seats
	return b
}

func (b *FloorPlanBuilder) WithVersion(v int) *FloorPlanBuilder {
	b.Version = v
	return b
}

// WithBookedRoom appends a room booked by holder, starting at b.Now.
func (b *FloorPlanBuilder) WithBookedRoom(roomNumber, capacity int, holder uuid.UUID, d time.Duration) *FloorPlanBuilder {
	start := b.Now
	until := b.Now.Add(d)
	b.Rooms = append(b.Rooms, floorplan.Room{
		RoomNumber:   roomNumber,
		Capacity:     capacity,
		Booked:       true,
		BookedBy:     &holder,
		BookedUntil:  &until,
		BookingCount: 1,
		LastBookedAt: &start,
	})
	return b
}

// Build methods
func (b *FloorPlanBuilder) BuildDomain() (*floorplan.FloorPlan, error) {
	p, err := floorplan.NewFloorPlan(b.ID, b.Name, b.Description, b.Seats, b.Rooms, b.Now)
	if err != nil {
		return nil, err
	}
	p.Version = b.Version
	return p, nil
}

func (b *FloorPlanBuilder) BuildCreateRequestDTO() reqdto.CreateFloorPlanRequest {
	req := reqdto.CreateFloorPlanRequest{
		Name:        b.Name,
		Description: b.Description,
		Seats:       make([]reqdto.SeatRequest, 0, len(b.Seats)),
		Rooms:       make([]reqdto.RoomRequest, 0, len(b.Rooms)),
	}
	for _, s := range b.Seats {
		req.Seats = append(req.Seats, reqdto.SeatRequest{SeatNumber: s.SeatNumber, Occupied: s.Occupied})
	}
	for _, r := range b.Rooms {
		req.Rooms = append(req.Rooms, reqdto.RoomRequest{
			RoomNumber:   r.RoomNumber,
			Capacity:     r.Capacity,
			Booked:       r.Booked,
			BookedBy:     r.BookedBy,
			BookedUntil:  r.BookedUntil,
			BookingCount: r.BookingCount,
			LastBookedAt: r.LastBookedAt,
		})
	}
	return req
}

func (b *FloorPlanBuilder) BuildReplaceRequestDTO(version *int) reqdto.ReplaceFloorPlanRequest {
	create := b.BuildCreateRequestDTO()
	return reqdto.ReplaceFloorPlanRequest{
		Version:     version,
		Name:        &create.Name,
		Description: &create.Description,
		Seats:       create.Seats,
		Rooms:       create.Rooms,
	}
}
