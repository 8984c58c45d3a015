package repository

import (
	"Quicker/internal/model"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 返回独立的内存库，限制单连接避免 :memory: 多连接各自建库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite error: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB error: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(&model.User{}, &model.Quick{}, &model.UserFollow{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, email, nickname string) *model.User {
	t.Helper()

	user := &model.User{
		Email:     email,
		Nickname:  nickname,
		Password:  "x",
		FirstName: "first",
		LastName:  "last",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user error: %v", err)
	}
	return user
}
