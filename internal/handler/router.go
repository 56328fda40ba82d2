package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"floorplan-service/internal/domain/user"
	"floorplan-service/internal/handler/api"
	"floorplan-service/internal/handler/middleware"
	"floorplan-service/internal/infra/metrics"
	"floorplan-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine           *gin.Engine
	Config           config.Config
	Logger           *middleware.Logger
	Metrics          *metrics.Recorder
	FloorPlanHandler *api.FloorPlanHandler
	BookingHandler   *api.BookingHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p.Engine, p.Config, p.Metrics, p.FloorPlanHandler, p.BookingHandler, p.AuthMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder *metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	slogger := logger.GetSlogLogger()
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.HTTPMetrics(recorder))
	}
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	recorder *metrics.Recorder,
	floorPlanHandler *api.FloorPlanHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(recorder.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
	operatorOnly := authMiddleware.RequireRoleAtLeast(user.RoleOperator)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		plans := apiGroup.Group("/floorplans")
		addRoutes(plans, []route{
			{Method: http.MethodGet, Path: "", Handler: floorPlanHandler.List},
			{Method: http.MethodPost, Path: "", Handler: floorPlanHandler.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: floorPlanHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: floorPlanHandler.Replace, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodDelete, Path: "/:id", Handler: floorPlanHandler.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/:id/sync", Handler: floorPlanHandler.Sync, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodPost, Path: "/:id/suggest-room", Handler: floorPlanHandler.SuggestRoom},
			{Method: http.MethodPost, Path: "/:id/rooms/:roomNumber/book", Handler: bookingHandler.Book},
			{Method: http.MethodPost, Path: "/:id/rooms/:roomNumber/unbook", Handler: bookingHandler.Unbook},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/me", Handler: bookingHandler.ListMine},
			{Method: http.MethodGet, Path: "/users/:userId", Handler: bookingHandler.ListForUser},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
