package repository

import (
	"Quicker/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuickRepo interface {
	CreateQuick(ctx context.Context, quick *model.Quick) error
	GetQuick(ctx context.Context, id uint64) (*model.Quick, error)
	GetAllQuicks(ctx context.Context) ([]*model.Quick, error)
	GetQuicksByAuthorIds(ctx context.Context, authorIds []uint64) ([]*model.Quick, error)
	UpdateQuick(ctx context.Context, quick *model.Quick) error
}

type QuickRepoImpl struct {
	db *gorm.DB
}

func NewQuickRepo(db *gorm.DB) QuickRepo {
	return &QuickRepoImpl{db: db}
}

func (s *QuickRepoImpl) CreateQuick(ctx context.Context, quick *model.Quick) error {
	return s.db.WithContext(ctx).Create(quick).Error
}

func (s *QuickRepoImpl) GetQuick(ctx context.Context, id uint64) (*model.Quick, error) {
	quick := &model.Quick{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		First(quick, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return quick, nil
}

// GetAllQuicks 获取全站 Quick，时间倒序，同一时刻按 id 倒序保证稳定排序
func (s *QuickRepoImpl) GetAllQuicks(ctx context.Context) ([]*model.Quick, error) {
	var quicks []*model.Quick
	result := s.db.WithContext(ctx).
		Preload("Author").
		Where("is_deleted = ?", false).
		Order("created_at desc, id desc").
		Find(&quicks)

	if result.Error != nil {
		return nil, result.Error
	}
	return quicks, nil
}

// GetQuicksByAuthorIds 获取指定作者集合的 Quick，排序规则同 GetAllQuicks
func (s *QuickRepoImpl) GetQuicksByAuthorIds(ctx context.Context, authorIds []uint64) ([]*model.Quick, error) {
	quicks := make([]*model.Quick, 0)
	if len(authorIds) == 0 {
		return quicks, nil
	}
	result := s.db.WithContext(ctx).
		Preload("Author").
		Where("author_id IN ? AND is_deleted = ?", authorIds, false).
		Order("created_at desc, id desc").
		Find(&quicks)

	if result.Error != nil {
		return nil, result.Error
	}
	return quicks, nil
}

func (s *QuickRepoImpl) UpdateQuick(ctx context.Context, quick *model.Quick) error {
	result := s.db.WithContext(ctx).
		Model(&model.Quick{}).
		Where("id = ?", quick.ID).
		Select("content", "is_deleted", "updated_at").
		Updates(quick)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
