package game

import (
	"github.com/gin-gonic/gin"

	"github.com/sudono1/gamesucks-api/internal/auth"
	"github.com/sudono1/gamesucks-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	public := r.Group("/public/items")
	public.Use(middleware.RateLimitByIP(20, 40))
	{
		public.GET("", handler.ListPublic)
		public.GET("/:id", handler.GetPublic)
	}

	// Item milik pelapak, perlu login
	mine := r.Group("/users/items")
	mine.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(auth.RolePelapak, auth.RoleAdmin),
	)
	{
		mine.GET("", handler.ListMine)
		mine.GET("/:id", handler.GetMine)
		mine.POST("", handler.Create)
		mine.PATCH("/:id", handler.Update)
		mine.DELETE("/:id", handler.Delete)
	}
}
