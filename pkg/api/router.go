package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urmzd/homai-roku/pkg/api/handlers"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/metrics"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	registry   *device.Registry
	discoverer device.Discoverer
	metrics    *metrics.Metrics
}

// NewRouter creates a new API router. m may be nil, in which case
// /metrics is not served.
func NewRouter(registry *device.Registry, discoverer device.Discoverer, m *metrics.Metrics) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		registry:   registry,
		discoverer: discoverer,
		metrics:    m,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	healthHandler := handlers.NewHealthHandler(r.registry, r.discoverer)
	r.engine.GET("/health", healthHandler.Health)

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		discoveryHandler := handlers.NewDiscoveryHandler(r.discoverer)
		discovery := v1.Group("/discovery")
		{
			discovery.GET("/devices", discoveryHandler.Discover)
			discovery.POST("/start", discoveryHandler.StartDiscovery)
			discovery.POST("/stop", discoveryHandler.StopDiscovery)
			discovery.GET("/events", discoveryHandler.Events)
		}

		devicesHandler := handlers.NewDevicesHandler(r.registry)
		controlHandler := handlers.NewControlHandler(r.registry)
		appsHandler := handlers.NewAppsHandler(r.registry)
		mediaHandler := handlers.NewMediaHandler(r.registry)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.POST("", devicesHandler.CreateDevice)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.PATCH("/:id", devicesHandler.RenameDevice)
			devices.DELETE("/:id", devicesHandler.RemoveDevice)

			// Remote control
			devices.GET("/:id/buttons", controlHandler.Buttons)
			devices.POST("/:id/buttons/:button", controlHandler.PressButton)
			devices.POST("/:id/input/:input", controlHandler.SwitchInput)
			devices.POST("/:id/mode", controlHandler.SwitchMode)
			devices.GET("/:id/power", controlHandler.Power)

			// Apps
			devices.GET("/:id/apps", appsHandler.Apps)
			devices.GET("/:id/active", appsHandler.ActiveApp)
			devices.POST("/:id/launch/:app", appsHandler.Launch)
			devices.GET("/:id/icon-info", appsHandler.IconInfo)
			devices.GET("/:id/icon", appsHandler.Icon)

			// Info and playback
			devices.GET("/:id/info", mediaHandler.Info)
			devices.GET("/:id/status", mediaHandler.Status)
			devices.GET("/:id/media-player", mediaHandler.MediaPlayer)
			devices.POST("/:id/search", mediaHandler.Search)
			devices.POST("/:id/text", mediaHandler.Text)
		}
	}
}

// Handler returns the engine as an http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
