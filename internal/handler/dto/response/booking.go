package response

import (
	"time"

	"floorplan-service/internal/usecase/queries"
)

type BookingResponse struct {
	FloorPlanID   string     `json:"floorPlanId"`
	FloorPlanName string     `json:"floorPlanName"`
	RoomNumber    int        `json:"roomNumber"`
	Capacity      int        `json:"capacity"`
	BookedUntil   *time.Time `json:"bookedUntil"`
	LastBookedAt  *time.Time `json:"lastBookedAt"`
	Expired       bool       `json:"expired"`
}

type BookingListResponse struct {
	Count int               `json:"count"`
	Rooms []BookingResponse `json:"rooms"`
}

func FromBookingViews(views []queries.BookingView) BookingListResponse {
	rooms := make([]BookingResponse, len(views))
	for i, v := range views {
		rooms[i] = BookingResponse{
			FloorPlanID:   v.PlanID.String(),
			FloorPlanName: v.PlanName,
			RoomNumber:    v.RoomNumber,
			Capacity:      v.Capacity,
			BookedUntil:   v.BookedUntil,
			LastBookedAt:  v.LastBookedAt,
			Expired:       v.Expired,
		}
	}
	return BookingListResponse{Count: len(rooms), Rooms: rooms}
}
