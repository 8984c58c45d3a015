package dto

type QuickDTO struct {
	ID        uint64  `json:"quick_id"`
	Content   string  `json:"content"`
	By        string  `json:"by"`
	IsDeleted bool    `json:"is_deleted"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}
