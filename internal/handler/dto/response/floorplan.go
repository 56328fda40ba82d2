package response

import (
	"time"

	"floorplan-service/internal/domain/floorplan"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SeatResponse struct {
	SeatNumber int  `json:"seatNumber"`
	Occupied   bool `json:"occupied"`
}

type RoomResponse struct {
	RoomNumber   int        `json:"roomNumber"`
	Capacity     int        `json:"capacity"`
	Booked       bool       `json:"booked"`
	BookedBy     *uuid.UUID `json:"bookedBy"`
	BookedUntil  *time.Time `json:"bookedUntil"`
	BookingCount int        `json:"bookingCount"`
	LastBookedAt *time.Time `json:"lastBookedAt"`
}

type FloorPlanResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Version        int            `json:"version"`
	LastModifiedAt time.Time      `json:"lastModifiedAt"`
	Seats          []SeatResponse `json:"seats"`
	Rooms          []RoomResponse `json:"rooms"`
}

type FloorPlanSummaryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Version        int       `json:"version"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
	SeatCount      int       `json:"seatCount"`
	RoomCount      int       `json:"roomCount"`
	AvailableRooms int       `json:"availableRooms"`
}

type PlanMutationResponse struct {
	Message     string             `json:"message"`
	UpdatedPlan *FloorPlanResponse `json:"updatedPlan"`
}

type RoomMutationResponse struct {
	Message string             `json:"message"`
	Room    RoomResponse       `json:"room"`
	Plan    *FloorPlanResponse `json:"plan"`
}

type SuggestRoomResponse struct {
	SuggestedRoom RoomResponse `json:"suggestedRoom"`
}

type SyncResponse struct {
	Message  string `json:"message"`
	Version  int    `json:"version"`
	Applied  int    `json:"applied"`
	Skipped  int    `json:"skipped"`
	Replayed bool   `json:"replayed"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromFloorPlan(p *floorplan.FloorPlan) *FloorPlanResponse {
	res := &FloorPlanResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Version:        p.Version,
		LastModifiedAt: p.LastModifiedAt,
		Seats:          make([]SeatResponse, 0, len(p.Seats)),
		Rooms:          make([]RoomResponse, 0, len(p.Rooms)),
	}
	for _, s := range p.Seats {
		res.Seats = append(res.Seats, SeatResponse{SeatNumber: s.SeatNumber, Occupied: s.Occupied})
	}
	for _, r := range p.Rooms {
		res.Rooms = append(res.Rooms, FromRoom(r))
	}
	return res
}

func FromRoom(r floorplan.Room) RoomResponse {
	var res RoomResponse
	// Field names and types match one to one.
	_ = copier.Copy(&res, &r)
	return res
}

func FromFloorPlanList(plans []*floorplan.FloorPlan) []*FloorPlanSummaryResponse {
	res := make([]*FloorPlanSummaryResponse, len(plans))
	for i, p := range plans {
		available := 0
		for _, r := range p.Rooms {
			if !r.Booked {
				available++
			}
		}
		res[i] = &FloorPlanSummaryResponse{
			ID:             p.ID.String(),
			Name:           p.Name,
			Description:    p.Description,
			Version:        p.Version,
			LastModifiedAt: p.LastModifiedAt,
			SeatCount:      len(p.Seats),
			RoomCount:      len(p.Rooms),
			AvailableRooms: available,
		}
	}
	return res
}
