package api

import (
	"errors"
	"io"
	"net/http"

	"floorplan-service/internal/domain/user"
	reqdto "floorplan-service/internal/handler/dto/request"
	resdto "floorplan-service/internal/handler/dto/response"
	"floorplan-service/internal/handler/httperr"
	"floorplan-service/internal/handler/middleware"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/usecase/commands"
	"floorplan-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.FloorPlanCommands
	q    queries.FloorPlanQueries
}

func NewBookingHandler(cmds commands.FloorPlanCommands, q queries.FloorPlanQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book room
// @Description Book a room for the caller, or for userId when the caller is an admin
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param roomNumber path int true "Room number"
// @Param request body reqdto.BookRoomRequest false "Booking options"
// @Success 200 {object} resdto.RoomMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/floorplans/{id}/rooms/{roomNumber}/book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := planID(c)
	if !ok {
		return
	}
	number, ok := roomNumber(c)
	if !ok {
		return
	}
	var req reqdto.BookRoomRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	res, err := h.cmds.BookRoom(c.Request.Context(), commands.BookRoomRequest{
		PlanID:          id,
		RoomNumber:      number,
		OnBehalfOf:      req.UserID,
		DurationMinutes: req.DurationMinutes,
	}, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RoomMutationResponse{
		Message: "Room booked",
		Room:    resdto.FromRoom(res.Room),
		Plan:    resdto.FromFloorPlan(res.Plan),
	})
}

// @Summary Unbook room
// @Description Release a booking held by the caller. Admins may omit userId to release any booking.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param roomNumber path int true "Room number"
// @Param request body reqdto.UnbookRoomRequest false "Holder"
// @Success 200 {object} resdto.RoomMutationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/floorplans/{id}/rooms/{roomNumber}/unbook [post]
func (h *BookingHandler) Unbook(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := planID(c)
	if !ok {
		return
	}
	number, ok := roomNumber(c)
	if !ok {
		return
	}
	var req reqdto.UnbookRoomRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	res, err := h.cmds.UnbookRoom(c.Request.Context(), commands.UnbookRoomRequest{
		PlanID:     id,
		RoomNumber: number,
		UserID:     req.UserID,
	}, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RoomMutationResponse{
		Message: "Room unbooked",
		Room:    resdto.FromRoom(res.Room),
		Plan:    resdto.FromFloorPlan(res.Plan),
	})
}

// @Summary My bookings
// @Description List rooms currently booked by the caller across all plans
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingListResponse
// @Router /api/bookings/me [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	h.list(c, actor.UserID)
}

// @Summary User bookings
// @Description List rooms booked by a user. Only admins may look up someone else.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/bookings/users/{userId} [get]
func (h *BookingHandler) ListForUser(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	if userID != actor.UserID && !actor.IsAdmin() {
		httperr.AbortWithError(c, http.StatusForbidden, errs.ErrInsufficientRole, "Insufficient permissions", nil)
		return
	}
	h.list(c, userID)
}

func (h *BookingHandler) list(c *gin.Context, userID uuid.UUID) {
	views, err := h.q.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func principal(c *gin.Context) (user.Principal, bool) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return user.Principal{}, false
	}
	return actor, true
}

// bindOptionalJSON accepts an empty body as the zero request.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		bindingError(c, err)
		return false
	}
	return true
}
