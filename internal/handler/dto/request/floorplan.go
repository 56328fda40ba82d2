package request

import (
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SeatRequest struct {
	SeatNumber int  `json:"seatNumber"`
	Occupied   bool `json:"occupied"`
}

// RoomRequest carries no value rules of its own; the plan's Validate reports
// them so create, replace and sync share one error shape.
type RoomRequest struct {
	RoomNumber   int        `json:"roomNumber"`
	Capacity     int        `json:"capacity"`
	Booked       bool       `json:"booked"`
	BookedBy     *uuid.UUID `json:"bookedBy"`
	BookedUntil  *time.Time `json:"bookedUntil"`
	BookingCount int        `json:"bookingCount"`
	LastBookedAt *time.Time `json:"lastBookedAt"`
}

type CreateFloorPlanRequest struct {
	Name        string        `json:"name" binding:"required,max=200"`
	Description string        `json:"description" binding:"max=2000"`
	Seats       []SeatRequest `json:"seats" binding:"dive"`
	Rooms       []RoomRequest `json:"rooms" binding:"dive"`
}

// ReplaceFloorPlanRequest replaces the listed fields. An omitted array keeps
// the stored one; an empty array clears it.
type ReplaceFloorPlanRequest struct {
	Version     *int          `json:"version" binding:"omitempty,gte=1"`
	Name        *string       `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string       `json:"description" binding:"omitempty,max=2000"`
	Seats       []SeatRequest `json:"seats" binding:"omitempty,dive"`
	Rooms       []RoomRequest `json:"rooms" binding:"omitempty,dive"`
}

func (r *CreateFloorPlanRequest) ToCommand() (commands.CreatePlanRequest, error) {
	seats, err := toSeats(r.Seats)
	if err != nil {
		return commands.CreatePlanRequest{}, err
	}
	rooms, err := toRooms(r.Rooms)
	if err != nil {
		return commands.CreatePlanRequest{}, err
	}
	return commands.CreatePlanRequest{
		Name:        r.Name,
		Description: r.Description,
		Seats:       seats,
		Rooms:       rooms,
	}, nil
}

func (r *ReplaceFloorPlanRequest) ToCommand() (commands.ReplacePlanRequest, error) {
	seats, err := toSeats(r.Seats)
	if err != nil {
		return commands.ReplacePlanRequest{}, err
	}
	rooms, err := toRooms(r.Rooms)
	if err != nil {
		return commands.ReplacePlanRequest{}, err
	}
	return commands.ReplacePlanRequest{
		CallerVersion: r.Version,
		Replacement: floorplan.Replacement{
			Name:        r.Name,
			Description: r.Description,
			Seats:       seats,
			Rooms:       rooms,
		},
	}, nil
}

// toSeats keeps nil distinct from empty so omitted arrays are not cleared.
func toSeats(in []SeatRequest) ([]floorplan.Seat, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]floorplan.Seat, 0, len(in))
	if err := copier.Copy(&out, &in); err != nil {
		return nil, err
	}
	return out, nil
}

func toRooms(in []RoomRequest) ([]floorplan.Room, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]floorplan.Room, 0, len(in))
	if err := copier.Copy(&out, &in); err != nil {
		return nil, err
	}
	return out, nil
}
