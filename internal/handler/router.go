package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resource-scheduler/internal/handler/api"
	"resource-scheduler/internal/handler/dto/request"
	"resource-scheduler/internal/handler/middleware"
	"resource-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Resource       *api.ResourceHandler
	Rule           *api.RuleHandler
	Intervention   *api.InterventionHandler
	Unavailability *api.UnavailabilityHandler
}

// NewRouter mounts middleware and routes. gatherer may be nil when metrics are disabled.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	request.RegisterValidators()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogging(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && gatherer != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		resources := apiGroup.Group("/resources")
		addRoutes(resources, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Resource.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Resource.Get},
			{Method: http.MethodGet, Path: "/:id/occupancy", Handler: h.Resource.Occupancy},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Resource.Availability},
			{Method: http.MethodGet, Path: "/:id/calendar.ics", Handler: h.Resource.Calendar},
			{Method: http.MethodGet, Path: "/:id/rules", Handler: h.Rule.List},
			{Method: http.MethodPost, Path: "/:id/rules", Handler: h.Rule.Create},
		})

		rules := apiGroup.Group("/rules")
		addRoutes(rules, []route{
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Rule.Delete},
		})

		interventions := apiGroup.Group("/interventions")
		addRoutes(interventions, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Intervention.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Intervention.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Intervention.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Intervention.Delete},
		})

		unavailabilities := apiGroup.Group("/unavailabilities")
		addRoutes(unavailabilities, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Unavailability.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Unavailability.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Unavailability.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Unavailability.Delete},
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
