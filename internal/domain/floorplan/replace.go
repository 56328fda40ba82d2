package floorplan

import (
	"time"

	"floorplan-service/internal/pkg/patch"
)

// Replacement is the desired state submitted by an editor. Nil fields keep the
// current value; a non-nil empty slice clears the collection.
type Replacement struct {
	Name        *string
	Description *string
	Seats       []Seat
	Rooms       []Room
}

// Replace applies r after the version check. On error p is left untouched.
func (p *FloorPlan) Replace(callerVersion *int, r Replacement, policy ConflictPolicy, now time.Time) error {
	next, err := CheckAndBump(p, callerVersion, policy)
	if err != nil {
		return err
	}

	candidate := p.Clone()
	candidate.Name = patch.Coalesce(r.Name, p.Name)
	candidate.Description = patch.Coalesce(r.Description, p.Description)
	if r.Seats != nil {
		candidate.Seats = cloneSeats(r.Seats)
	}
	if r.Rooms != nil {
		candidate.Rooms = cloneRooms(r.Rooms)
	}
	candidate.normalize()
	if err := candidate.Validate(); err != nil {
		return err
	}

	candidate.commit(next, now)
	*p = *candidate
	return nil
}
