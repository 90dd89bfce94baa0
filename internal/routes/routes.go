package routes

import (
	"workaholic_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler group under /api.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	api := router.Group("/api")

	h.User.RegisterRoutes(api)

	jobs := api.Group("/jobs")
	h.Job.RegisterRoutes(jobs)
	h.Application.RegisterRoutes(jobs)
}
