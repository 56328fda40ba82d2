package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/handler/httperr"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	CodeVersionConflict = "VERSION_CONFLICT"
	CodePlanNotFound    = "PLAN_NOT_FOUND"
	CodeRoomNotFound    = "ROOM_NOT_FOUND"
	CodeNoRoom          = "NO_ROOM_AVAILABLE"
	CodeAlreadyBooked   = "ALREADY_BOOKED"
	CodeNotBooked       = "NOT_BOOKED"
	CodeNotHolder       = "NOT_BOOKING_HOLDER"
	CodeInvalidBatch    = "INVALID_BATCH"
	CodeValidation      = "VALIDATION_FAILED"
	CodePlanBusy        = "PLAN_BUSY"
	CodeBadRequest      = "BAD_REQUEST"
)

const busyRetryAfter = time.Second

type conflictDetail struct {
	CurrentVersion int `json:"currentVersion"`
}

type fieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// respondError maps usecase and domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		conflict   *floorplan.ConflictError
		validation *floorplan.ValidationError
	)

	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithCode(c, http.StatusConflict, CodeVersionConflict, err, "Version conflict",
			conflictDetail{CurrentVersion: conflict.CurrentVersion})
	case errors.Is(err, floorplan.ErrPlanNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, CodePlanNotFound, err, "Floor plan not found", nil)
	case errors.Is(err, floorplan.ErrRoomNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, CodeRoomNotFound, err, "Room not found", nil)
	case errors.Is(err, floorplan.ErrNoRoomAvailable):
		httperr.AbortWithCode(c, http.StatusNotFound, CodeNoRoom, err, "No suitable room available", nil)
	case errors.Is(err, floorplan.ErrAlreadyBooked):
		httperr.AbortWithCode(c, http.StatusConflict, CodeAlreadyBooked, err, "Room is already booked", nil)
	case errors.Is(err, floorplan.ErrNotBooked):
		httperr.AbortWithCode(c, http.StatusConflict, CodeNotBooked, err, "Room is not booked", nil)
	case errors.Is(err, floorplan.ErrForbidden):
		httperr.AbortWithCode(c, http.StatusForbidden, CodeNotHolder, err, "You cannot unbook this room", nil)
	case errs.Is(err, commands.ErrActingForOthers):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only admins may act for another user", nil)
	case errors.Is(err, floorplan.ErrInvalidBatch):
		httperr.AbortWithCode(c, http.StatusBadRequest, CodeInvalidBatch, err, "Invalid change batch", gin.H{"reason": err.Error()})
	case errors.As(err, &validation):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, CodeValidation, err, "Validation failed",
			fieldDetail{Field: validation.Field, Reason: validation.Reason})
	case errs.Is(err, errs.ErrLockUnavailable), errs.Is(err, errs.ErrRetriesExhausted):
		httperr.AbortRetryLater(c, CodePlanBusy, err, "Floor plan is busy, retry shortly", busyRetryAfter)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// bindingError reports a well-formed body holding a value of the wrong type the
// same way the domain reports a bad value.
func bindingError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, CodeValidation, err, "Validation failed",
			fieldDetail{Field: typeErr.Field, Reason: fmt.Sprintf("must be %s, got %s", typeErr.Type, typeErr.Value)})
		return
	}
	httperr.AbortWithCode(c, http.StatusBadRequest, CodeBadRequest, err, "Invalid request format", nil)
}
