package handlers

import (
	"net/http"

	"babytrack/internal/logger"
	"babytrack/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Upcoming-reminder stream (HTTP upgrade) — same port
	router.GET("/ws", h.userIdMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerRecordRoutes(api)
		h.registerAnalysisRoutes(api)
		h.registerReminderRoutes(api)
		h.registerProviderRoutes(api)
	}
}

func (h *Handler) registerRecordRoutes(api *gin.RouterGroup) {
	feedings := api.Group("/feedings")
	{
		feedings.POST("/", h.addFeeding)
		feedings.GET("/", h.listFeedings)
		feedings.DELETE("/:id", h.deleteFeeding)
	}
	stool := api.Group("/stool")
	{
		stool.POST("/", h.addStool)
		stool.GET("/", h.listStool)
		stool.DELETE("/:id", h.deleteStool)
	}
	growth := api.Group("/growth")
	{
		growth.POST("/", h.addGrowth)
		growth.GET("/", h.listGrowth)
		growth.DELETE("/:id", h.deleteGrowth)
	}
}

func (h *Handler) registerAnalysisRoutes(api *gin.RouterGroup) {
	analysis := api.Group("/analysis")
	{
		// ?mode=week|month&start=...&end=...&end_anchor=...
		analysis.GET("/:type", h.getAnalysis)
		analysis.GET("/:type/chart", h.getAnalysisChart)
	}
}

func (h *Handler) registerReminderRoutes(api *gin.RouterGroup) {
	reminders := api.Group("/reminders")
	{
		reminders.POST("/", h.addReminder)
		reminders.GET("/", h.listReminders)
		reminders.DELETE("/:id", h.deleteReminder)
	}
}

func (h *Handler) registerProviderRoutes(api *gin.RouterGroup) {
	providers := api.Group("/providers")
	{
		providers.GET("/", h.listProviders)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
