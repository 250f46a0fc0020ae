package category

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

func (h *Handler) List(ctx *gin.Context) {
	categories, err := h.service.List(ctx)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message": "SUCCESS",
		"data":    categories,
	})
}

func (h *Handler) Create(ctx *gin.Context) {
	var req UpsertCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.JSON(ctx, http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.service.Create(ctx, req); err != nil {
		response.Error(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Success")
}

func (h *Handler) Update(ctx *gin.Context) {
	var req UpsertCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.JSON(ctx, http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.service.Update(ctx, ctx.Param("id"), req); err != nil {
		response.Error(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Success")
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx, ctx.Param("id")); err != nil {
		response.Error(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Success")
}
