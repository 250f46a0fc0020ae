package game

import "time"

type CreateGameRequest struct {
	Title       string `json:"title" binding:"required"`
	Studio      string `json:"studio" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price" binding:"required,gte=0"`
	Stock       int32  `json:"stock" binding:"required,gte=0"`
	PictureURL  string `json:"url_picture"`
	Status      string `json:"status" binding:"omitempty,oneof=show hidden"`
	Description string `json:"description"`
}

type UpdateGameRequest struct {
	Title       *string `json:"title"`
	Studio      *string `json:"studio"`
	Category    *string `json:"category"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Stock       *int32  `json:"stock" binding:"omitempty,gte=0"`
	PictureURL  *string `json:"url_picture"`
	Status      *string `json:"status" binding:"omitempty,oneof=show hidden"`
	Description *string `json:"description"`
}

type ListPublicQuery struct {
	Page    int    `form:"p,default=1" binding:"omitempty,gte=1"`
	PerPage int    `form:"rp,default=25" binding:"omitempty,gte=1,lte=100"`
	ID      string `form:"id"`
	Title   string `form:"title"`
	Studio  string `form:"studio"`
	Price   *int64 `form:"price"`
	Stock   *int32 `form:"stock"`
	// Filter kategori pakai nama, bukan id (kontrak lama)
	Category string `form:"category"`
	OrderBy  string `form:"orderBy" binding:"omitempty,oneof=id title status price stock studio category createdAt updatedAt"`
	Sort     string `form:"sort,default=asc" binding:"omitempty,oneof=asc desc"`
}

type PagedGamesResponse struct {
	Page      int            `json:"page"`
	TotalPage int64          `json:"total_page"`
	PerPage   int            `json:"per_page"`
	Data      []GameResponse `json:"data"`
}

type GameResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Studio      string    `json:"studio"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	Stock       int32     `json:"stock"`
	PictureURL  string    `json:"url_picture"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	PelapakID   string    `json:"pelapak_id"`
	PelapakName string    `json:"pelapak_name"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toGameResponse(g Game) GameResponse {
	return GameResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Studio:      g.Studio,
		Category:    g.CategoryName,
		Price:       g.Price,
		Stock:       g.Stock,
		PictureURL:  g.PictureURL,
		Status:      g.Status,
		Description: g.Description,
		PelapakID:   g.PelapakID.String(),
		PelapakName: g.PelapakName,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
