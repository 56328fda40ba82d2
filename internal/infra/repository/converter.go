package repository

import (
	"encoding/json"
	"fmt"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/pkg/clock"

	"github.com/google/uuid"
)

func floorPlanToRow(p *floorplan.FloorPlan) (FloorPlanRow, error) {
	seats, err := json.Marshal(nonNil(p.Seats))
	if err != nil {
		return FloorPlanRow{}, fmt.Errorf("encode seats: %w", err)
	}
	rooms, err := json.Marshal(nonNil(p.Rooms))
	if err != nil {
		return FloorPlanRow{}, fmt.Errorf("encode rooms: %w", err)
	}
	batches, err := json.Marshal(nonNil(p.AppliedBatches))
	if err != nil {
		return FloorPlanRow{}, fmt.Errorf("encode applied batches: %w", err)
	}
	return FloorPlanRow{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		// #nosec G115 -- plan versions stay far below int32 overflow
		Version:        int32(p.Version),
		Seats:          seats,
		Rooms:          rooms,
		AppliedBatches: batches,
		LastModifiedAt: p.LastModifiedAt,
	}, nil
}

func rowToFloorPlan(r FloorPlanRow) (*floorplan.FloorPlan, error) {
	p := &floorplan.FloorPlan{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Version:        int(r.Version),
		LastModifiedAt: clock.Normalize(r.LastModifiedAt),
		Seats:          []floorplan.Seat{},
		Rooms:          []floorplan.Room{},
	}
	if err := json.Unmarshal(r.Seats, &p.Seats); err != nil {
		return nil, fmt.Errorf("decode seats: %w", err)
	}
	if err := json.Unmarshal(r.Rooms, &p.Rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	if len(r.AppliedBatches) > 0 {
		if err := json.Unmarshal(r.AppliedBatches, &p.AppliedBatches); err != nil {
			return nil, fmt.Errorf("decode applied batches: %w", err)
		}
	}
	if len(p.AppliedBatches) == 0 {
		p.AppliedBatches = nil
	}
	return p, nil
}

// roomHolderFilter builds the JSONB containment document matching plans that
// hold a room booked by userID.
func roomHolderFilter(userID uuid.UUID) ([]byte, error) {
	return json.Marshal([]map[string]any{{"booked": true, "bookedBy": userID}})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
