package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sudono1/gamesucks-api/internal/auth"
	"github.com/sudono1/gamesucks-api/internal/cart"
	"github.com/sudono1/gamesucks-api/internal/category"
	"github.com/sudono1/gamesucks-api/internal/game"
	"github.com/sudono1/gamesucks-api/internal/outbox"
)

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client, logger *zap.Logger) {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	categoryRepo := category.NewRepository(db)
	gameRepo := game.NewRepository(db)
	cartRepo := cart.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Caches & Adapters ---
	gameCache := game.NewCache(rdb)
	catalogAdapter := game.NewCatalogAdapter(gameRepo, gameCache)

	// --- Services ---
	authService := auth.NewService(authRepo)
	categoryService := category.NewService(categoryRepo)
	gameService := game.NewService(gameRepo, categoryRepo, gameCache)
	cartService := cart.NewService(cart.Deps{
		DB:      db,
		Repo:    cartRepo,
		Catalog: catalogAdapter,
		Outbox:  outboxRepo,
		Logger:  logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	categoryHandler := category.NewHandler(categoryService)
	gameHandler := game.NewHandler(gameService)
	cartHandler := cart.NewHandler(cartService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		category.RegisterRoutes(api, categoryHandler)
		game.RegisterRoutes(api, gameHandler)
	}

	// Endpoint cart dipasang di root, bukan di bawah /api
	root := router.Group("")
	{
		cart.RegisterRoutes(root, cartHandler)
	}
}
