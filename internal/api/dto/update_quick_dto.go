package dto

type UpdateQuickDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=256"`
}
