package api

import (
	"net/http"
	"strconv"

	"floorplan-service/internal/domain/floorplan"
	reqdto "floorplan-service/internal/handler/dto/request"
	resdto "floorplan-service/internal/handler/dto/response"
	"floorplan-service/internal/handler/httperr"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/usecase/commands"
	"floorplan-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type FloorPlanHandler struct {
	cmds commands.FloorPlanCommands
	q    queries.FloorPlanQueries
}

func NewFloorPlanHandler(cmds commands.FloorPlanCommands, q queries.FloorPlanQueries) *FloorPlanHandler {
	return &FloorPlanHandler{cmds: cmds, q: q}
}

// @Summary List floor plans
// @Description List all floor plans with seat and room counts
// @Tags floorplans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FloorPlanSummaryResponse
// @Failure 401 {object} httperr.Response
// @Router /api/floorplans [get]
func (h *FloorPlanHandler) List(c *gin.Context) {
	plans, err := h.q.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFloorPlanList(plans))
}

// @Summary Create floor plan
// @Description Create a floor plan at version 1
// @Tags floorplans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFloorPlanRequest true "Floor plan"
// @Success 201 {object} resdto.FloorPlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/floorplans [post]
func (h *FloorPlanHandler) Create(c *gin.Context) {
	var req reqdto.CreateFloorPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		bindingError(c, err)
		return
	}

	plan, err := h.cmds.CreatePlan(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/floorplans/"+plan.ID.String())
	c.JSON(http.StatusCreated, resdto.FromFloorPlan(plan))
}

// @Summary Get floor plan
// @Description Get the current state and version of a floor plan
// @Tags floorplans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Success 200 {object} resdto.FloorPlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/floorplans/{id} [get]
func (h *FloorPlanHandler) Get(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}
	plan, err := h.q.GetPlan(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFloorPlan(plan))
}

// @Summary Replace floor plan
// @Description Replace plan fields. A version older than the stored one is rejected with 409 and the current version.
// @Tags floorplans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param request body reqdto.ReplaceFloorPlanRequest true "Replacement"
// @Success 200 {object} resdto.PlanMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/floorplans/{id} [put]
func (h *FloorPlanHandler) Replace(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}
	var req reqdto.ReplaceFloorPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		bindingError(c, err)
		return
	}

	plan, err := h.cmds.ReplacePlan(c.Request.Context(), id, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PlanMutationResponse{
		Message:     "Floor plan updated",
		UpdatedPlan: resdto.FromFloorPlan(plan),
	})
}

// @Summary Delete floor plan
// @Tags floorplans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/floorplans/{id} [delete]
func (h *FloorPlanHandler) Delete(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeletePlan(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Floor plan deleted"})
}

// @Summary Suggest room
// @Description Suggest the best-fitting free room for a party. Nothing is reserved.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param request body reqdto.SuggestRoomRequest true "Party size"
// @Success 200 {object} resdto.SuggestRoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/floorplans/{id}/suggest-room [post]
func (h *FloorPlanHandler) SuggestRoom(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}
	var req reqdto.SuggestRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	room, err := h.q.SuggestRoom(c.Request.Context(), id, req.Participants)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuggestRoomResponse{SuggestedRoom: resdto.FromRoom(room)})
}

// @Summary Sync offline changes
// @Description Apply a batch of recorded edits. Unknown identifiers are skipped; the version advances once per applied batch.
// @Tags sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Floor plan ID"
// @Param Idempotency-Key header string false "Batch key (UUID); a replayed key is not applied twice"
// @Param request body reqdto.SyncChangesRequest true "Changes"
// @Success 200 {object} resdto.SyncResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/floorplans/{id}/sync [post]
func (h *FloorPlanHandler) Sync(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}
	batchKey, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}
	var req reqdto.SyncChangesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	changes, err := floorplan.DecodeChanges(req.Changes)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.cmds.SyncChanges(c.Request.Context(), commands.SyncChangesRequest{
		PlanID:   id,
		Changes:  changes,
		BatchKey: batchKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	msg := "Changes synced"
	switch {
	case res.Replayed:
		msg = "Batch already applied"
	case res.Applied == 0:
		msg = "No matching changes"
	}
	c.JSON(http.StatusOK, resdto.SyncResponse{
		Message:  msg,
		Version:  res.Version,
		Applied:  res.Applied,
		Skipped:  res.Skipped,
		Replayed: res.Replayed,
	})
}

func planID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid floor plan id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func roomNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room number", nil)
		return 0, false
	}
	return n, true
}

func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyKeyInvalid)
	}
	return &key, nil
}
