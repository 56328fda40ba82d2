package floorplan

import (
	"time"

	"github.com/google/uuid"
)

// BookRoom marks roomNumber as held by holder until now+duration. The holder
// is nil when the booking is anonymous.
func (p *FloorPlan) BookRoom(roomNumber int, holder *uuid.UUID, duration time.Duration, now time.Time) (Room, error) {
	if duration <= 0 {
		return Room{}, invalid("durationMinutes", "must be positive")
	}
	room, ok := p.Room(roomNumber)
	if !ok {
		return Room{}, ErrRoomNotFound
	}
	if room.Booked {
		return Room{}, ErrAlreadyBooked
	}

	next, err := CheckAndBump(p, nil, PolicyLenient)
	if err != nil {
		return Room{}, err
	}
	room.book(holder, now.Add(duration), now)
	p.commit(next, now)
	return room.clone(), nil
}

// UnbookRoom releases roomNumber. A non-nil requester must match the recorded
// holder when there is one; nil is an administrative override.
func (p *FloorPlan) UnbookRoom(roomNumber int, requester *uuid.UUID, now time.Time) (Room, error) {
	room, ok := p.Room(roomNumber)
	if !ok {
		return Room{}, ErrRoomNotFound
	}
	if !room.Booked {
		return Room{}, ErrNotBooked
	}
	if requester != nil && room.BookedBy != nil && *room.BookedBy != *requester {
		return Room{}, ErrForbidden
	}

	next, err := CheckAndBump(p, nil, PolicyLenient)
	if err != nil {
		return Room{}, err
	}
	room.release()
	p.commit(next, now)
	return room.clone(), nil
}

func (r *Room) book(holder *uuid.UUID, until, now time.Time) {
	r.Booked = true
	if holder != nil {
		id := *holder
		r.BookedBy = &id
	} else {
		r.BookedBy = nil
	}
	r.BookedUntil = &until
	r.BookingCount++
	at := now
	r.LastBookedAt = &at
}
