package model

import (
	"time"
)

type Quick struct {
	ID        uint64     `gorm:"primaryKey"`
	AuthorID  uint64     `gorm:"not null;index:idx_author_id" json:"author_id"`
	Content   string     `gorm:"type:varchar(256);not null" json:"content"`
	IsDeleted bool       `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"` // 仅在编辑/删除时写入

	// 关联关系
	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Quick) TableName() string {
	return "quicks"
}
