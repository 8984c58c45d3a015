package service

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/model"
	"Quicker/internal/repository"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 服务层测试直连内存库，Redis 客户端未初始化时所有缓存读写按未命中退化

type testEnv struct {
	db            *gorm.DB
	userRepo      repository.UserRepo
	followRepo    repository.UserFollowRepo
	quickRepo     repository.QuickRepo
	userSvc       UserService
	userFollowSvc UserFollowService
	quickSvc      QuickService
}

func newTestEnv(t *testing.T) *testEnv {
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

	userRepo := repository.NewUserRepo(db)
	followRepo := repository.NewUserFollowRepo(db)
	quickRepo := repository.NewQuickRepo(db)

	userFollowSvc := NewUserFollowService(followRepo, userRepo)
	userSvc := NewUserService(userRepo, userFollowSvc)
	quickSvc := NewQuickService(quickRepo, followRepo)

	return &testEnv{
		db:            db,
		userRepo:      userRepo,
		followRepo:    followRepo,
		quickRepo:     quickRepo,
		userSvc:       userSvc,
		userFollowSvc: userFollowSvc,
		quickSvc:      quickSvc,
	}
}

func (e *testEnv) register(t *testing.T, email, nickname string) *model.User {
	t.Helper()

	err := e.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Email:     email,
		Password:  "password123",
		Nickname:  nickname,
		FirstName: "first",
		LastName:  "last",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	user, err := e.userRepo.GetUserByEmail(context.Background(), email)
	if err != nil || user == nil {
		t.Fatalf("lookup registered user error: %v", err)
	}
	return user
}
