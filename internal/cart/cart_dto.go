package cart

import "time"

const (
	ActionAddQty = "add_qty"
	ActionSubQty = "substract_qty"
	ActionPay    = "pay"
	ActionDelete = "delete"
)

type AdjustRequest struct {
	Action string `json:"action" binding:"required,oneof=add_qty substract_qty pay delete"`
}

type CartItemResponse struct {
	ID     string `json:"id"`
	ItemID string `json:"item_id"`
	Title  string `json:"title"`
	Qty    int32  `json:"qty"`
	Price  int64  `json:"price"`
}

type OpenCartResponse struct {
	TotalQty   int32              `json:"total_qty"`
	TotalPrice int64              `json:"total_price"`
	Data       []CartItemResponse `json:"data"`
}

type PaidCartResponse struct {
	ID         string             `json:"id"`
	TotalQty   int32              `json:"total_qty"`
	TotalPrice int64              `json:"total_price"`
	Status     string             `json:"status"`
	PaidAt     time.Time          `json:"paid_at"`
	Data       []CartItemResponse `json:"data"`
}

func toCartItemResponse(d TransactionDetail) CartItemResponse {
	return CartItemResponse{
		ID:     d.ID.String(),
		ItemID: d.GameID.String(),
		Title:  d.GameTitle,
		Qty:    d.Qty,
		Price:  d.Price,
	}
}

func toCartItemResponses(details []TransactionDetail) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toCartItemResponse(d))
	}
	return out
}
