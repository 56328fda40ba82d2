//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/domain/user"
	"floorplan-service/internal/handler/api"
	resdto "floorplan-service/internal/handler/dto/response"
	"floorplan-service/internal/handler/middleware"
	"floorplan-service/internal/pkg/errs"
	"floorplan-service/internal/pkg/ptr"
	"floorplan-service/internal/usecase/commands"
	"floorplan-service/tests/common/builder"
	"floorplan-service/tests/common/httptest"
	"floorplan-service/tests/common/testutil"
	commandsmock "floorplan-service/tests/mock/commands"
	queriesmock "floorplan-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FloorPlanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFloorPlanCommands
	mockQueries  *queriesmock.MockFloorPlanQueries
	handler      *api.FloorPlanHandler
	plan         *floorplan.FloorPlan
}

func (s *FloorPlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFloorPlanCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFloorPlanQueries(s.mockCtrl)
	s.handler = api.NewFloorPlanHandler(s.mockCommands, s.mockQueries)

	plan, err := builder.NewFloorPlanBuilder().BuildDomain()
	s.Require().NoError(err)
	s.plan = plan

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, user.Principal{UserID: uuid.New(), Role: user.RoleAdmin})
		c.Next()
	}

	s.router.Use(middleware.ErrorHandler(slog.New(slog.DiscardHandler)))
	g := s.router.Group("/api/floorplans", authMiddleware)
	g.GET("", s.handler.List)
	g.POST("", s.handler.Create)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id", s.handler.Replace)
	g.DELETE("/:id", s.handler.Delete)
	g.POST("/:id/sync", s.handler.Sync)
	g.POST("/:id/suggest-room", s.handler.SuggestRoom)
}

func (s *FloorPlanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFloorPlanHandlerSuite(t *testing.T) {
	suite.Run(t, new(FloorPlanHandlerTestSuite))
}

func (s *FloorPlanHandlerTestSuite) planURL(suffix string) string {
	return "/api/floorplans/" + s.plan.ID.String() + suffix
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestCreate() {
	url := "/api/floorplans"
	reqBody := builder.NewFloorPlanBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with location", func() {
		s.mockCommands.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreatePlanRequest) (*floorplan.FloorPlan, error) {
				s.Equal(reqBody.Name, req.Name)
				s.Len(req.Rooms, len(reqBody.Rooms))
				return s.plan, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.FloorPlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.plan.ID.String(), body.ID)
		s.Equal(1, body.Version)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/floorplans/" + s.plan.ID.String()})
	})

	cases := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "empty name", mutate: testutil.Field("name", ""), expectCode: http.StatusBadRequest},
		{name: "non-numeric capacity", mutate: testutil.Field("rooms.0.capacity", "ten"), expectCode: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 422 on non-numeric capacity names the field", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("rooms.0.capacity", "ten"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		env := httptest.DecodeError[struct {
			Field string `json:"field"`
		}](s.T(), rec)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal(api.CodeValidation, env.Error.Code)
		s.Contains(env.Detail.Field, "capacity")
	})

	s.Run("error: 422 on zero capacity reaches the domain check", func() {
		s.mockCommands.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreatePlanRequest) (*floorplan.FloorPlan, error) {
				s.Equal(0, req.Rooms[0].Capacity)
				return nil, &floorplan.ValidationError{Field: "rooms[0].capacity", Reason: "must be positive, got 0"}
			})

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("rooms.0.capacity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		httptest.AssertErrorCode(s.T(), rec, api.CodeValidation)
	})

	s.Run("error: 422 on duplicate room numbers", func() {
		s.mockCommands.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
			Return(nil, &floorplan.ValidationError{Field: "rooms[1].roomNumber", Reason: "duplicate room number 101"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")

		var body struct {
			Detail struct {
				Field string `json:"field"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("rooms[1].roomNumber", body.Detail.Field)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetPlan(gomock.Any(), s.plan.ID).Return(s.plan, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.planURL(""), nil, "bearer-token")

		var body resdto.FloorPlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.plan.Name, body.Name)
		s.Len(body.Rooms, 2)
		s.Nil(body.Rooms[0].BookedBy)
	})

	s.Run("error: 404 for unknown plan", func() {
		s.mockQueries.EXPECT().GetPlan(gomock.Any(), gomock.Any()).Return(nil, floorplan.ErrPlanNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/floorplans/"+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Floor plan not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/floorplans/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid floor plan id")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().GetPlan(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.planURL(""), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *FloorPlanHandlerTestSuite) TestList() {
	booked, err := builder.NewFloorPlanBuilder().WithBookedRoom(301, 4, uuid.New(), time.Hour).BuildDomain()
	s.Require().NoError(err)
	s.mockQueries.EXPECT().ListPlans(gomock.Any()).Return([]*floorplan.FloorPlan{s.plan, booked}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/floorplans", nil, "bearer-token")

	var body []resdto.FloorPlanSummaryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal(2, body[0].AvailableRooms)
	s.Equal(3, body[1].RoomCount)
	s.Equal(2, body[1].AvailableRooms)
}

// ================================================================================
// TestReplace
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestReplace() {
	s.Run("success: passes the caller version through", func() {
		updated := s.plan.Clone()
		updated.Version = 4
		s.mockCommands.EXPECT().ReplacePlan(gomock.Any(), s.plan.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.ReplacePlanRequest) (*floorplan.FloorPlan, error) {
				s.Require().NotNil(req.CallerVersion)
				s.Equal(3, *req.CallerVersion)
				s.Nil(req.Replacement.Seats)
				return updated, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.planURL(""),
			map[string]any{"version": 3, "name": "Renamed"}, "bearer-token")

		var body resdto.PlanMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.UpdatedPlan.Version)
	})

	s.Run("error: 409 carries the current version", func() {
		s.mockCommands.EXPECT().ReplacePlan(gomock.Any(), s.plan.ID, gomock.Any()).
			Return(nil, &floorplan.ConflictError{CurrentVersion: 3})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.planURL(""),
			builder.NewFloorPlanBuilder().BuildReplaceRequestDTO(ptr.To(2)), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Version conflict")

		body := httptest.DecodeError[struct {
			CurrentVersion int `json:"currentVersion"`
		}](s.T(), rec)
		s.Equal(api.CodeVersionConflict, body.Error.Code)
		s.Equal(3, body.Detail.CurrentVersion)
	})

	s.Run("error: 503 when the plan stays contended", func() {
		s.mockCommands.EXPECT().ReplacePlan(gomock.Any(), s.plan.ID, gomock.Any()).
			Return(nil, errs.Mark(errors.New("version moved"), errs.ErrRetriesExhausted))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.planURL(""), map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
		httptest.AssertErrorCode(s.T(), rec, api.CodePlanBusy)
	})

	s.Run("error: 400 for version below one", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.planURL(""), map[string]any{"version": 0}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
	s.Run("error: 422 for a non-numeric capacity", func() {
		body := map[string]any{"rooms": []any{map[string]any{"roomNumber": 101, "capacity": "six"}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.planURL(""), body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		httptest.AssertErrorCode(s.T(), rec, api.CodeValidation)
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().DeletePlan(gomock.Any(), s.plan.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.planURL(""), nil, "bearer-token")

		var body resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Floor plan deleted", body.Message)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().DeletePlan(gomock.Any(), s.plan.ID).Return(floorplan.ErrPlanNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.planURL(""), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestSuggestRoom
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestSuggestRoom() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().SuggestRoom(gomock.Any(), s.plan.ID, 10).
			Return(floorplan.Room{RoomNumber: 1, Capacity: 10, BookingCount: 5}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.planURL("/suggest-room"),
			map[string]any{"participants": 10}, "bearer-token")

		var body resdto.SuggestRoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.SuggestedRoom.RoomNumber)
	})

	s.Run("error: 404 when nothing fits", func() {
		s.mockQueries.EXPECT().SuggestRoom(gomock.Any(), s.plan.ID, 50).Return(floorplan.Room{}, floorplan.ErrNoRoomAvailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.planURL("/suggest-room"),
			map[string]any{"participants": 50}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No suitable room available")
	})

	for _, participants := range []any{0, -1, "ten"} {
		s.Run("error: 400 for invalid participants", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.planURL("/suggest-room"),
				map[string]any{"participants": participants}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}
}

// ================================================================================
// TestSync
// ================================================================================

func (s *FloorPlanHandlerTestSuite) TestSync() {
	body := map[string]any{
		"changes": []any{
			map[string]any{"type": "seat", "identifier": 1, "op": "update", "payload": map[string]any{"occupied": true}},
			map[string]any{"type": "room", "identifier": 999, "op": "update", "payload": map[string]any{"capacity": 2}},
		},
	}

	s.Run("success: idempotency key becomes the batch key", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().SyncChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.SyncChangesRequest) (*commands.SyncChangesResult, error) {
				s.Equal(s.plan.ID, req.PlanID)
				s.Require().NotNil(req.BatchKey)
				s.Equal(key, *req.BatchKey)
				s.Len(req.Changes, 2)
				s.Equal(floorplan.ChangeTypeSeat, req.Changes[0].Type)
				return &commands.SyncChangesResult{SyncResult: floorplan.SyncResult{Applied: 1, Skipped: 1, Version: 2}}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, s.planURL("/sync"), body, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		var res resdto.SyncResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Changes synced", res.Message)
		s.Equal(2, res.Version)
		s.Equal(1, res.Skipped)
	})

	s.Run("success: replayed batch", func() {
		s.mockCommands.EXPECT().SyncChanges(gomock.Any(), gomock.Any()).
			Return(&commands.SyncChangesResult{SyncResult: floorplan.SyncResult{Skipped: 2, Version: 2, Replayed: true}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.planURL("/sync"), body, "bearer-token")

		var res resdto.SyncResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Replayed)
		s.Equal("Batch already applied", res.Message)
	})

	s.Run("error: 400 for a malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, s.planURL("/sync"), body, "bearer-token",
			map[string]string{"Idempotency-Key": "retry-1"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 for an invalid batch", func() {
		s.mockCommands.EXPECT().SyncChanges(gomock.Any(), gomock.Any()).
			Return(nil, &floorplan.BatchError{Index: -1, Reason: "changes must be an array"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.planURL("/sync"), map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid change batch")
		httptest.AssertErrorCode(s.T(), rec, api.CodeInvalidBatch)
	})

	malformed := []struct {
		name   string
		body   any
		reason string
	}{
		{name: "changes is a string", body: map[string]any{"changes": "all"}, reason: "changes must be an array"},
		{name: "changes is an object", body: map[string]any{"changes": map[string]any{"type": "room"}}, reason: "changes must be an array"},
		{name: "identifier is not an integer", body: map[string]any{"changes": []any{
			map[string]any{"type": "seat", "identifier": 1, "op": "update", "payload": map[string]any{}},
			map[string]any{"type": "seat", "identifier": "abc", "op": "update", "payload": map[string]any{}},
		}}, reason: "changes[1]: identifier"},
		{name: "change is not an object", body: httptest.RawJSON(`{"changes":[42]}`), reason: "changes[0]"},
	}
	for _, tc := range malformed {
		s.Run("error: 400 INVALID_BATCH when "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.planURL("/sync"), tc.body, "bearer-token")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid change batch")
			env := httptest.DecodeError[struct {
				Reason string `json:"reason"`
			}](s.T(), rec)
			s.Equal(api.CodeInvalidBatch, env.Error.Code)
			s.Contains(env.Detail.Reason, tc.reason)
		})
	}

	s.Run("error: 400 BAD_REQUEST for a body that is not JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.planURL("/sync"), httptest.RawJSON(`{"changes":[`), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		httptest.AssertErrorCode(s.T(), rec, api.CodeBadRequest)
	})
}
