package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudono1/gamesucks-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.JSON(ctx, http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := h.service.Register(ctx, req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message": "Success",
		"token":   token,
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.JSON(ctx, http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := h.service.Login(ctx, req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	profile, err := h.service.Me(ctx, userID)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
