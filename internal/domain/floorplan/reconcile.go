package floorplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"floorplan-service/internal/pkg/patch"

	"github.com/google/uuid"
)

// MaxAppliedBatches bounds the idempotency keys remembered per plan.
const MaxAppliedBatches = 128

type SyncResult struct {
	Applied  int
	Skipped  int
	Version  int
	Replayed bool
}

// ApplyChanges merges a batch of offline edits in order. Changes that name an
// unknown type, op or identifier are skipped. The version advances once when at
// least one change applied. A batchKey seen before makes the call a no-op.
// On error p is left untouched.
func (p *FloorPlan) ApplyChanges(changes []Change, batchKey *uuid.UUID, defaultDuration time.Duration, now time.Time) (SyncResult, error) {
	if changes == nil {
		return SyncResult{}, &BatchError{Index: -1, Reason: "changes must be an array"}
	}
	if batchKey != nil && p.HasAppliedBatch(*batchKey) {
		return SyncResult{Skipped: len(changes), Version: p.Version, Replayed: true}, nil
	}

	candidate := p.Clone()
	var res SyncResult
	for i, ch := range changes {
		applied, err := candidate.applyChange(i, ch, defaultDuration, now)
		if err != nil {
			return SyncResult{}, err
		}
		if applied {
			res.Applied++
		} else {
			res.Skipped++
		}
	}

	if res.Applied == 0 {
		res.Version = p.Version
		return res, nil
	}
	if err := candidate.Validate(); err != nil {
		return SyncResult{}, err
	}

	next, err := CheckAndBump(p, nil, PolicyLenient)
	if err != nil {
		return SyncResult{}, err
	}
	if batchKey != nil {
		candidate.rememberBatch(*batchKey)
	}
	candidate.commit(next, now)
	*p = *candidate

	res.Version = p.Version
	return res, nil
}

func (p *FloorPlan) HasAppliedBatch(key uuid.UUID) bool {
	return slices.Contains(p.AppliedBatches, key)
}

func (p *FloorPlan) rememberBatch(key uuid.UUID) {
	p.AppliedBatches = append(p.AppliedBatches, key)
	if over := len(p.AppliedBatches) - MaxAppliedBatches; over > 0 {
		p.AppliedBatches = slices.Clone(p.AppliedBatches[over:])
	}
}

func (p *FloorPlan) applyChange(i int, ch Change, defaultDuration time.Duration, now time.Time) (bool, error) {
	if ch.Op != ChangeOpUpdate {
		return false, nil
	}

	switch ch.Type {
	case ChangeTypeSeat:
		seat, ok := p.Seat(ch.Identifier)
		if !ok {
			return false, nil
		}
		var sp SeatPatch
		if err := decodePatch(ch.Payload, &sp); err != nil {
			return false, patchError(i, err)
		}
		return patch.Apply(&seat.Occupied, sp.Occupied), nil

	case ChangeTypeRoom:
		room, ok := p.Room(ch.Identifier)
		if !ok {
			return false, nil
		}
		var rp RoomPatch
		if err := decodePatch(ch.Payload, &rp); err != nil {
			return false, patchError(i, err)
		}
		return room.applyPatch(rp, defaultDuration, now, fmt.Sprintf("changes[%d].payload", i))

	default:
		return false, nil
	}
}

// patchError reports a well-formed payload carrying a value of the wrong type as
// a validation failure and anything else as a malformed batch.
func patchError(i int, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return invalid(fmt.Sprintf("changes[%d].payload.%s", i, typeErr.Field), "must be %s, got %s", typeErr.Type, typeErr.Value)
	}
	return &BatchError{Index: i, Reason: err.Error()}
}

// applyPatch routes booking transitions through the same bookkeeping as
// BookRoom and reports whether the room changed.
func (r *Room) applyPatch(rp RoomPatch, defaultDuration time.Duration, now time.Time, field string) (bool, error) {
	changed := false
	if rp.Capacity != nil {
		if *rp.Capacity <= 0 {
			return false, invalid(field+".capacity", "must be positive, got %d", *rp.Capacity)
		}
		changed = patch.Apply(&r.Capacity, rp.Capacity)
	}

	if rp.Booked != nil {
		switch {
		case *rp.Booked && !r.Booked:
			until := now.Add(defaultDuration)
			if rp.BookedUntil != nil {
				until = *rp.BookedUntil
			}
			r.book(rp.BookedBy, until, now)
			return true, nil
		case !*rp.Booked:
			if rp.BookedBy != nil || rp.BookedUntil != nil {
				return false, invalid(field, "bookedBy and bookedUntil cannot accompany booked=false")
			}
			if !r.Booked {
				return changed, nil
			}
			r.release()
			return true, nil
		}
	}

	if rp.BookedBy == nil && rp.BookedUntil == nil {
		return changed, nil
	}
	if !r.Booked {
		return false, invalid(field, "bookedBy and bookedUntil require a booked room")
	}
	if rp.BookedBy != nil && (r.BookedBy == nil || *r.BookedBy != *rp.BookedBy) {
		id := *rp.BookedBy
		r.BookedBy = &id
		changed = true
	}
	if rp.BookedUntil != nil && (r.BookedUntil == nil || !r.BookedUntil.Equal(*rp.BookedUntil)) {
		t := *rp.BookedUntil
		r.BookedUntil = &t
		changed = true
	}
	return changed, nil
}
