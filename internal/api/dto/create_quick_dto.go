package dto

type CreateQuickDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=256"`
}
