package handlers

import (
	"net/http"

	"movie-manager/internal/logger"
	"movie-manager/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
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
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness endpoints
	router.GET("/", h.root)
	router.GET("/health", h.health)

	// Auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Catalog endpoints, bearer token required
	movies := router.Group("/movies", h.identityMiddleware)
	{
		movies.GET("", h.listMovies)
		movies.POST("", h.createMovie)
		movies.GET("/:id", h.getMovie)
		movies.PUT("/:id", h.updateMovie)
		movies.DELETE("/:id", h.deleteMovie)
	}

	// Live catalog stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsCatalog)

	return router
}

// @Summary      API liveness message
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Movies API is running"})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
