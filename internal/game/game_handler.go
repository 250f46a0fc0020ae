package game

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

func pelapakID(ctx *gin.Context) string {
	return ctx.GetString("user_id")
}

func (h *Handler) Create(ctx *gin.Context) {
	var req CreateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.JSON(ctx, http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.service.Create(ctx, pelapakID(ctx), req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message": "Success",
		"data":    created,
	})
}

func (h *Handler) GetMine(ctx *gin.Context) {
	g, err := h.service.GetMine(ctx, pelapakID(ctx), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message": "SUCCESS",
		"data":    g,
	})
}

func (h *Handler) ListMine(ctx *gin.Context) {
	games, err := h.service.ListMine(ctx, pelapakID(ctx))
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message": "SUCCESS",
		"data":    games,
	})
}

func (h *Handler) Update(ctx *gin.Context) {
	var req UpdateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.JSON(ctx, http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.service.Update(ctx, pelapakID(ctx), ctx.Param("id"), req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message": "Success",
		"data":    updated,
	})
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx, pelapakID(ctx), ctx.Param("id")); err != nil {
		response.Error(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Success")
}

func (h *Handler) GetPublic(ctx *gin.Context) {
	g, err := h.service.GetPublic(ctx, ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message": "SUCCESS",
		"data":    g,
	})
}

func (h *Handler) ListPublic(ctx *gin.Context) {
	var q ListPublicQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.JSON(ctx, http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	paged, err := h.service.ListPublic(ctx, q)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message":    "SUCCESS",
		"page":       paged.Page,
		"total_page": paged.TotalPage,
		"per_page":   paged.PerPage,
		"data":       paged.Data,
	})
}
