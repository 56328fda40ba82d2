package request

import (
	"github.com/google/uuid"
)

type SuggestRoomRequest struct {
	Participants int `json:"participants" binding:"required,gt=0"`
}

type BookRoomRequest struct {
	// UserID books on behalf of another user; admin only.
	UserID          *uuid.UUID `json:"userId"`
	DurationMinutes *int       `json:"durationMinutes" binding:"omitempty,gt=0,lte=10080"`
}

type UnbookRoomRequest struct {
	UserID *uuid.UUID `json:"userId"`
}
