package floorplan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ChangeType string

const (
	ChangeTypeSeat ChangeType = "seat"
	ChangeTypeRoom ChangeType = "room"
)

type ChangeOp string

const ChangeOpUpdate ChangeOp = "update"

// Change is one recorded client edit. Payload is decoded into SeatPatch or
// RoomPatch depending on Type.
type Change struct {
	Type       ChangeType      `json:"type"`
	Identifier int             `json:"identifier"`
	Op         ChangeOp        `json:"op"`
	Payload    json.RawMessage `json:"payload"`
	Timestamp  *time.Time      `json:"timestamp,omitempty"`
}

// SeatPatch lists the mutable seat fields.
type SeatPatch struct {
	Occupied *bool `json:"occupied"`
}

// RoomPatch lists the mutable room fields. Booking statistics and room
// identity are not patchable.
type RoomPatch struct {
	Capacity    *int       `json:"capacity"`
	Booked      *bool      `json:"booked"`
	BookedBy    *uuid.UUID `json:"bookedBy"`
	BookedUntil *time.Time `json:"bookedUntil"`
}

func NewSeatChange(seatNumber int, p SeatPatch, at time.Time) (Change, error) {
	return newChange(ChangeTypeSeat, seatNumber, p, at)
}

func NewRoomChange(roomNumber int, p RoomPatch, at time.Time) (Change, error) {
	return newChange(ChangeTypeRoom, roomNumber, p, at)
}

func newChange(typ ChangeType, id int, p any, at time.Time) (Change, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return Change{}, err
	}
	return Change{Type: typ, Identifier: id, Op: ChangeOpUpdate, Payload: raw, Timestamp: &at}, nil
}

// DecodeChanges parses the changes array of a sync request. A missing or null
// array decodes to nil, which ApplyChanges rejects. Any other shape problem is
// a BatchError naming the offending change.
func DecodeChanges(raw json.RawMessage) ([]Change, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &BatchError{Index: -1, Reason: "changes must be an array"}
	}
	changes := make([]Change, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &changes[i]); err != nil {
			return nil, changeError(i, err)
		}
	}
	return changes, nil
}

func changeError(i int, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &BatchError{Index: i, Reason: fmt.Sprintf("%s must be %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)}
	}
	return &BatchError{Index: i, Reason: err.Error()}
}

func decodePatch(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errEmptyPayload
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingPayload
	}
	return nil
}

var (
	errEmptyPayload    = errors.New("payload is required")
	errTrailingPayload = errors.New("payload has trailing data")
)
