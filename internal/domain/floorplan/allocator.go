package floorplan

import (
	"cmp"
	"slices"
)

// SuggestRoom picks the unbooked room that wastes the fewest seats for the
// given party, breaking ties by lower bookingCount and then by plan order.
// It is a pure read and never reserves the room.
func SuggestRoom(rooms []Room, participants int) (Room, error) {
	if participants <= 0 {
		return Room{}, invalid("participants", "must be a positive integer")
	}

	candidates := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if !r.Booked && r.Capacity >= participants {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return Room{}, ErrNoRoomAvailable
	}

	slices.SortStableFunc(candidates, func(a, b Room) int {
		if c := cmp.Compare(a.Capacity-participants, b.Capacity-participants); c != 0 {
			return c
		}
		return cmp.Compare(a.BookingCount, b.BookingCount)
	})
	return candidates[0].clone(), nil
}
