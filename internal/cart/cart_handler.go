package cart

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

// Get mengembalikan cart OPEN, atau daftar transaksi PAID kalau ?status=true.
func (h *Handler) Get(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	if ctx.Query("status") == "true" {
		paid, err := h.service.GetPaidCarts(ctx, userID)
		if err != nil {
			response.Error(ctx, err)
			return
		}
		response.JSON(ctx, http.StatusOK, gin.H{
			"message": "SUCCESS",
			"data":    paid,
		})
		return
	}

	cart, err := h.service.GetOpenCart(ctx, userID)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.JSON(ctx, http.StatusOK, gin.H{
		"message":     "SUCCESS",
		"total_qty":   cart.TotalQty,
		"total_price": cart.TotalPrice,
		"data":        cart.Data,
	})
}

func (h *Handler) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	if err := h.service.AddItem(ctx, userID, ctx.Param("itemId")); err != nil {
		response.Error(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Success")
}

func (h *Handler) Adjust(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	var req AdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, ErrInvalidAction)
		return
	}

	if err := h.service.Adjust(ctx, userID, ctx.Param("itemId"), req.Action); err != nil {
		response.Error(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Success")
}
