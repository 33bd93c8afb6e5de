package handlers

import (
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"todoapi/internal/logger"
	"todoapi/internal/service"
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
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Signup and login establish identity, so they sit outside the gate
	router.POST("/signup", h.signUp)
	router.POST("/login", h.logIn)

	// Todo endpoints (protected)
	h.registerTodoRoutes(router)

	return router
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todos := r.Group("/", h.tokenAuthMiddleware)
	{
		todos.POST("/todo", h.createTodo)
		todos.GET("/todos", h.listTodos)
		todos.GET("/todo/:id", h.getTodo)
		todos.PUT("/todo/:id", h.updateTodo)
		todos.DELETE("/todo/:id", h.deleteTodo)

		// WebSocket feed of the caller's todos — same port
		todos.GET("/ws/todos", h.wsTodos)
	}
}
