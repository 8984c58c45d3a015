package repository

import (
	"Quicker/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByNickname(ctx context.Context, nickname string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByNickname(ctx context.Context, nickname string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("nickname = ?", nickname).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// UpdateUser 整体覆盖用户资料
// 显式列出全部列，保证可选字段置空时写入 NULL 而不是被零值跳过
func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Select("email", "nickname", "password", "first_name", "last_name", "birth_date").
		Updates(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteUser 注销账号，单事务级联删除用户的 Quick 以及两个方向的关注边
// 粉丝数按关注边实时统计，级联中无需回写任何计数
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("author_id = ?", id).Delete(&model.Quick{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("follower_id = ?", id).Delete(&model.UserFollow{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("following_id = ?", id).Delete(&model.UserFollow{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Delete(&model.User{}, id); result.Error != nil {
			return result.Error
		}

		return nil
	})
}
