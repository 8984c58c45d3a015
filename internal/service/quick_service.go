package service

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/model"
	"Quicker/internal/repository"
	"context"
	"time"
)

type QuickService interface {
	CreateQuick(ctx context.Context, authorID uint64, dto *dto.CreateQuickDTO) (*dto.QuickDTO, error)
	GetQuick(ctx context.Context, id uint64) (*dto.QuickDTO, error)
	UpdateQuick(ctx context.Context, userID, id uint64, dto *dto.UpdateQuickDTO) error
	DeleteQuick(ctx context.Context, userID, id uint64) error
	GetFeed(ctx context.Context, userID uint64) ([]*dto.QuickDTO, error)
}

type QuickServiceImpl struct {
	quickRepo      repository.QuickRepo
	userFollowRepo repository.UserFollowRepo
}

func NewQuickService(quickRepo repository.QuickRepo, userFollowRepo repository.UserFollowRepo) QuickService {
	return &QuickServiceImpl{
		quickRepo:      quickRepo,
		userFollowRepo: userFollowRepo,
	}
}

func (s *QuickServiceImpl) CreateQuick(ctx context.Context, authorID uint64, createDTO *dto.CreateQuickDTO) (*dto.QuickDTO, error) {
	quick := &model.Quick{
		AuthorID:  authorID,
		Content:   createDTO.Content,
		CreatedAt: time.Now(),
	}
	if err := s.quickRepo.CreateQuick(ctx, quick); err != nil {
		return nil, err
	}

	created, err := s.quickRepo.GetQuick(ctx, quick.ID)
	if err != nil {
		return nil, err
	}
	return buildQuickDTO(created), nil
}

func (s *QuickServiceImpl) GetQuick(ctx context.Context, id uint64) (*dto.QuickDTO, error) {
	quick, err := s.quickRepo.GetQuick(ctx, id)
	if err != nil {
		return nil, err
	}
	if quick == nil {
		return nil, ErrQuickNotFound
	}
	return buildQuickDTO(quick), nil
}

// UpdateQuick 编辑内容，仅作者可操作，内容未变化视为无效请求
func (s *QuickServiceImpl) UpdateQuick(ctx context.Context, userID, id uint64, updateDTO *dto.UpdateQuickDTO) error {
	quick, err := s.quickRepo.GetQuick(ctx, id)
	if err != nil {
		return err
	}
	if quick == nil || quick.IsDeleted {
		return ErrQuickNotFound
	}
	if quick.AuthorID != userID {
		return ErrQuickNotOwner
	}
	if quick.Content == updateDTO.Content {
		return ErrQuickNoChange
	}

	now := time.Now()
	quick.Content = updateDTO.Content
	quick.UpdatedAt = &now
	return s.quickRepo.UpdateQuick(ctx, quick)
}

// DeleteQuick 软删除：保留行，置 is_deleted 标记
func (s *QuickServiceImpl) DeleteQuick(ctx context.Context, userID, id uint64) error {
	quick, err := s.quickRepo.GetQuick(ctx, id)
	if err != nil {
		return err
	}
	if quick == nil || quick.IsDeleted {
		return ErrQuickNotFound
	}
	if quick.AuthorID != userID {
		return ErrQuickNotOwner
	}

	now := time.Now()
	quick.IsDeleted = true
	quick.UpdatedAt = &now
	return s.quickRepo.UpdateQuick(ctx, quick)
}

// GetFeed 计算请求者可见的 Quick 列表
// 未登录（userID 为 0）返回全站内容；已登录仅返回关注用户的内容
// 统一按 created_at 倒序，平局按 id 倒序
func (s *QuickServiceImpl) GetFeed(ctx context.Context, userID uint64) ([]*dto.QuickDTO, error) {
	var quicks []*model.Quick
	var err error

	if userID == 0 {
		quicks, err = s.quickRepo.GetAllQuicks(ctx)
	} else {
		var follows []*model.UserFollow
		follows, err = s.userFollowRepo.GetUserFollowing(ctx, userID)
		if err != nil {
			return nil, err
		}

		authorIds := make([]uint64, 0, len(follows))
		for _, follow := range follows {
			authorIds = append(authorIds, follow.FollowingID)
		}
		quicks, err = s.quickRepo.GetQuicksByAuthorIds(ctx, authorIds)
	}
	if err != nil {
		return nil, err
	}

	quickDTOs := make([]*dto.QuickDTO, 0, len(quicks))
	for _, quick := range quicks {
		quickDTOs = append(quickDTOs, buildQuickDTO(quick))
	}
	return quickDTOs, nil
}
