package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleet-workflow/internal/domain/user"
	"fleet-workflow/internal/handler/api"
	"fleet-workflow/internal/handler/middleware"
	"fleet-workflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth           *api.AuthHandler
	WorkOrder      *api.WorkOrderHandler
	Inventory      *api.InventoryHandler
	Vehicle        *api.VehicleHandler
	Report         *api.ReportHandler
	Notification   *api.NotificationHandler
	Subscription   *api.SubscriptionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := h.AuthMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.AuthMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		addRoutes(apiGroup.Group("/work-orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.WorkOrder.Schedule},
			{Method: http.MethodPost, Path: "/register", Handler: h.WorkOrder.RegisterNew},
			{Method: http.MethodGet, Path: "/history", Handler: h.WorkOrder.History},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.WorkOrder.Calendar},
			{Method: http.MethodGet, Path: "/activities", Handler: h.WorkOrder.Activities},
			{Method: http.MethodGet, Path: "/day", Handler: h.WorkOrder.Day},
			{Method: http.MethodGet, Path: "/:id", Handler: h.WorkOrder.Get},
			{Method: http.MethodPost, Path: "/:id/register", Handler: h.WorkOrder.RegisterScheduled},
			{Method: http.MethodPost, Path: "/:id/decision", Handler: h.WorkOrder.Decide, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.WorkOrder.Complete},
			{Method: http.MethodPost, Path: "/:id/expire", Handler: h.WorkOrder.Expire, Mw: []gin.HandlerFunc{adminOnly}},
		})

		addRoutes(apiGroup.Group("/parts"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Inventory.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "", Handler: h.Inventory.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Inventory.Get},
			{Method: http.MethodPost, Path: "/:id/restock", Handler: h.Inventory.Restock, Mw: []gin.HandlerFunc{adminOnly}},
		})

		addRoutes(apiGroup.Group("/vehicles"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Vehicle.Register, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/:plate", Handler: h.Vehicle.Get},
		})

		addRoutes(apiGroup.Group("/reports"), []route{
			{Method: http.MethodGet, Path: "/vehicles/:plate", Handler: h.Report.Vehicle},
			{Method: http.MethodGet, Path: "/fleet", Handler: h.Report.Fleet},
		})

		addRoutes(apiGroup.Group("/notifications"), []route{
			{Method: http.MethodGet, Path: "/unread", Handler: h.Notification.Unread},
			{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
		})

		addRoutes(apiGroup.Group("/subscriptions"), []route{
			{Method: http.MethodGet, Path: "/:topic", Handler: h.Subscription.Subscribe},
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
