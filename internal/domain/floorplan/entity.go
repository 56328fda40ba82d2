package floorplan

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type Seat struct {
	SeatNumber int  `json:"seatNumber"`
	Occupied   bool `json:"occupied"`
}

type Room struct {
	RoomNumber   int        `json:"roomNumber"`
	Capacity     int        `json:"capacity"`
	Booked       bool       `json:"booked"`
	BookedBy     *uuid.UUID `json:"bookedBy,omitempty"`
	BookedUntil  *time.Time `json:"bookedUntil,omitempty"`
	BookingCount int        `json:"bookingCount"`
	LastBookedAt *time.Time `json:"lastBookedAt,omitempty"`
}

// IsExpired reports whether a booking has run past its end. Expired bookings
// stay booked until explicitly released.
func (r Room) IsExpired(now time.Time) bool {
	return r.Booked && r.BookedUntil != nil && now.After(*r.BookedUntil)
}

func (r Room) IsBookedBy(userID uuid.UUID) bool {
	return r.Booked && r.BookedBy != nil && *r.BookedBy == userID
}

func (r *Room) release() {
	r.Booked = false
	r.BookedBy = nil
	r.BookedUntil = nil
}

func (r Room) clone() Room {
	c := r
	if r.BookedBy != nil {
		id := *r.BookedBy
		c.BookedBy = &id
	}
	if r.BookedUntil != nil {
		t := *r.BookedUntil
		c.BookedUntil = &t
	}
	if r.LastBookedAt != nil {
		t := *r.LastBookedAt
		c.LastBookedAt = &t
	}
	return c
}

// FloorPlan is the versioned aggregate. Every accepted mutation advances
// Version by exactly one and stamps LastModifiedAt.
type FloorPlan struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Version        int         `json:"version"`
	LastModifiedAt time.Time   `json:"lastModifiedAt"`
	Seats          []Seat      `json:"seats"`
	Rooms          []Room      `json:"rooms"`
	AppliedBatches []uuid.UUID `json:"appliedBatches,omitempty"`
}

func NewFloorPlan(id uuid.UUID, name, description string, seats []Seat, rooms []Room, now time.Time) (*FloorPlan, error) {
	p := &FloorPlan{
		ID:             id,
		Name:           name,
		Description:    description,
		Version:        InitialVersion,
		LastModifiedAt: now,
		Seats:          cloneSeats(seats),
		Rooms:          cloneRooms(rooms),
	}
	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns a copy that shares no mutable state with p.
func (p *FloorPlan) Clone() *FloorPlan {
	c := *p
	c.Seats = cloneSeats(p.Seats)
	c.Rooms = cloneRooms(p.Rooms)
	c.AppliedBatches = slices.Clone(p.AppliedBatches)
	return &c
}

func (p *FloorPlan) Room(roomNumber int) (*Room, bool) {
	for i := range p.Rooms {
		if p.Rooms[i].RoomNumber == roomNumber {
			return &p.Rooms[i], true
		}
	}
	return nil, false
}

func (p *FloorPlan) Seat(seatNumber int) (*Seat, bool) {
	for i := range p.Seats {
		if p.Seats[i].SeatNumber == seatNumber {
			return &p.Seats[i], true
		}
	}
	return nil, false
}

// RoomsBookedBy lists the rooms whose current holder is userID, in plan order.
func (p *FloorPlan) RoomsBookedBy(userID uuid.UUID) []Room {
	var out []Room
	for _, r := range p.Rooms {
		if r.IsBookedBy(userID) {
			out = append(out, r.clone())
		}
	}
	return out
}

func (p *FloorPlan) commit(version int, now time.Time) {
	p.Version = version
	p.LastModifiedAt = now
}

// normalize clears booking details of rooms that are not booked.
func (p *FloorPlan) normalize() {
	if p.Seats == nil {
		p.Seats = []Seat{}
	}
	if p.Rooms == nil {
		p.Rooms = []Room{}
	}
	for i := range p.Rooms {
		if !p.Rooms[i].Booked {
			p.Rooms[i].release()
		}
	}
}

func cloneSeats(seats []Seat) []Seat {
	if seats == nil {
		return []Seat{}
	}
	return slices.Clone(seats)
}

func cloneRooms(rooms []Room) []Room {
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = r.clone()
	}
	return out
}
