package cart

import (
	"github.com/gin-gonic/gin"

	"github.com/sudono1/gamesucks-api/internal/auth"
	"github.com/sudono1/gamesucks-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(auth.RolePelapak, auth.RoleAdmin),
		middleware.RateLimitByUser(10, 20),
	)
	{
		carts.GET("", handler.Get)
		carts.POST("/:itemId", handler.AddItem)
		carts.PATCH("/:itemId", handler.Adjust)
	}
}
