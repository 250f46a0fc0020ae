package category

import "time"

type UpsertCategoryRequest struct {
	// Key "category" dipertahankan dari kontrak lama
	Name string `json:"category" binding:"required"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
