package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/sudono1/gamesucks-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.POST("/register", middleware.RateLimitByIP(2, 5), handler.Register)
		users.POST("/login", middleware.RateLimitByIP(5, 10), handler.Login)
	}

	me := users.Group("/me")
	me.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(RolePelapak, RoleAdmin))
	{
		me.GET("", handler.Me)
	}
}
