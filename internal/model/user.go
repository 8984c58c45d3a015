package model

import (
	"time"
)

type User struct {
	ID        uint64     `gorm:"primaryKey"`
	Email     string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_email"`
	Nickname  string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_nickname"`
	Password  string     `gorm:"type:varchar(255);not null"`
	FirstName string     `gorm:"type:varchar(50);not null"`
	LastName  string     `gorm:"type:varchar(50);not null"`
	BirthDate *time.Time `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Quicks []Quick `gorm:"foreignKey:AuthorID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
