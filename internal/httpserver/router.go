package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"taskboard/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	assigneeHandler *handler.AssigneeHandler,
	taskHandler *handler.TaskHandler,
	logger *zap.Logger,
	jwtSecret string,
	corsOrigin string,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(logger))
	r.Use(CORSMiddleware(corsOrigin))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/api/register", authHandler.Register)
	r.POST("/api/login", authHandler.Login)

	// Protected
	api := r.Group("/api")
	api.Use(AuthMiddleware(jwtSecret))
	{
		api.GET("/assignees", assigneeHandler.List)
		api.POST("/assignees", assigneeHandler.Add)
		api.DELETE("/assignees/:name", assigneeHandler.Remove)

		api.GET("/tasks", taskHandler.List)
		api.GET("/tasks/search", taskHandler.Search)
		api.POST("/tasks", taskHandler.Create)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.PUT("/tasks/:id/assignee", taskHandler.UpdateAssignee)
		api.DELETE("/tasks/:id", taskHandler.Delete)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(":" + port)
}
