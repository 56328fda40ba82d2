package floorplan

import (
	"fmt"
	"strings"
)

// Validate checks the structural invariants of a plan.
func (p *FloorPlan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if p.Version < InitialVersion {
		return invalid("version", "must be at least %d", InitialVersion)
	}

	seen := make(map[int]struct{}, len(p.Seats))
	for i, s := range p.Seats {
		if _, dup := seen[s.SeatNumber]; dup {
			return invalid(fmt.Sprintf("seats[%d].seatNumber", i), "duplicate seat number %d", s.SeatNumber)
		}
		seen[s.SeatNumber] = struct{}{}
	}

	seen = make(map[int]struct{}, len(p.Rooms))
	for i, r := range p.Rooms {
		field := fmt.Sprintf("rooms[%d]", i)
		if _, dup := seen[r.RoomNumber]; dup {
			return invalid(field+".roomNumber", "duplicate room number %d", r.RoomNumber)
		}
		seen[r.RoomNumber] = struct{}{}
		if err := r.validate(field); err != nil {
			return err
		}
	}
	return nil
}

func (r Room) validate(field string) error {
	if r.Capacity <= 0 {
		return invalid(field+".capacity", "must be positive, got %d", r.Capacity)
	}
	if r.BookingCount < 0 {
		return invalid(field+".bookingCount", "must not be negative")
	}
	if !r.Booked {
		return nil
	}
	if r.BookedUntil == nil {
		return invalid(field+".bookedUntil", "is required while the room is booked")
	}
	if r.LastBookedAt != nil && r.BookedUntil.Before(*r.LastBookedAt) {
		return invalid(field+".bookedUntil", "must not precede lastBookedAt")
	}
	return nil
}
