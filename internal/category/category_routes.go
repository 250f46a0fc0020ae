package category

import (
	"github.com/gin-gonic/gin"

	"github.com/sudono1/gamesucks-api/internal/auth"
	"github.com/sudono1/gamesucks-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	categories := r.Group("/public/category")
	{
		categories.GET("", middleware.RateLimitByIP(10, 20), handler.List)
	}

	// Mutasi kategori hanya untuk admin
	admin := categories.Group("")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(auth.RoleAdmin),
	)
	{
		admin.POST("", handler.Create)
		admin.PATCH("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
	}
}
