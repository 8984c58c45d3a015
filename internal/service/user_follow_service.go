package service

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/model"
	"Quicker/internal/pkg/consts"
	"Quicker/internal/pkg/redis"
	"Quicker/internal/repository"
	"context"
	"strconv"
	"time"
)

type UserFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	GetFollowedUsers(ctx context.Context, userID uint64) ([]*dto.UserDTO, error)
	GetFollowers(ctx context.Context, userID uint64) ([]*dto.UserDTO, error)
	GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error)
}

type UserFollowServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	userRepo       repository.UserRepo
}

func NewUserFollowService(userFollowRepo repository.UserFollowRepo, userRepo repository.UserRepo) UserFollowService {
	return &UserFollowServiceImpl{
		userFollowRepo: userFollowRepo,
		userRepo:       userRepo,
	}
}

type fetchCountFunc func(ctx context.Context, userId uint64) (int64, error)

// Follow 创建关注关系
// 校验顺序：目标存在 -> 非自关注 -> 未重复关注；粉丝数实时统计，无计数回写
func (s *UserFollowServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) error {
	target, err := s.userRepo.GetUserById(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if followerID == followingID {
		return ErrUserFollowSelf
	}

	userFollow, err := s.userFollowRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if userFollow != nil {
		return ErrUserFollowExist
	}

	err = s.userFollowRepo.CreateUserFollow(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	s.invalidateCountCache(ctx, followerID, followingID)
	return nil
}

// Unfollow 删除关注关系，边不存在时返回 ErrUserFollowNotFound
func (s *UserFollowServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	target, err := s.userRepo.GetUserById(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	rows, err := s.userFollowRepo.DeleteUserFollow(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserFollowNotFound
	}

	s.invalidateCountCache(ctx, followerID, followingID)
	return nil
}

// GetFollowedUsers 获取用户关注的所有用户
func (s *UserFollowServiceImpl) GetFollowedUsers(ctx context.Context, userID uint64) ([]*dto.UserDTO, error) {
	follows, err := s.userFollowRepo.GetUserFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowingID)
	}
	return s.buildUserList(ctx, ids)
}

// GetFollowers 获取用户的所有粉丝
func (s *UserFollowServiceImpl) GetFollowers(ctx context.Context, userID uint64) ([]*dto.UserDTO, error) {
	follows, err := s.userFollowRepo.GetUserFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowerID)
	}
	return s.buildUserList(ctx, ids)
}

func (s *UserFollowServiceImpl) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userID,
		consts.UserFollowerCountKey,
		s.userFollowRepo.GetUserFollowerCount,
	)
}

func (s *UserFollowServiceImpl) GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return s.getCountCommon(
		ctx, userID,
		consts.UserFollowingCountKey,
		s.userFollowRepo.GetUserFollowingCount,
	)
}

func (s *UserFollowServiceImpl) buildUserList(ctx context.Context, ids []uint64) ([]*dto.UserDTO, error) {
	userDTOs := make([]*dto.UserDTO, 0, len(ids))
	if len(ids) == 0 {
		return userDTOs, nil
	}

	users, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		followers, err := s.GetUserFollowerCount(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		userDTO, err := buildUserDTO(user, followers)
		if err != nil {
			return nil, err
		}
		userDTOs = append(userDTOs, userDTO)
	}
	return userDTOs, nil
}

func (s *UserFollowServiceImpl) getCountCommon(
	ctx context.Context,
	userId uint64,
	keyPrefix string,
	fetchDB fetchCountFunc,
) (int64, error) {
	key := keyPrefix + strconv.FormatUint(userId, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := fetchDB(ctx, userId)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}

// invalidateCountCache 关注关系变化后删除双方的计数缓存，并记入脏集合供定时任务回刷
func (s *UserFollowServiceImpl) invalidateCountCache(ctx context.Context, followerID, followingID uint64) {
	_ = redis.DeleteKey(ctx, consts.UserFollowerCountKey+strconv.FormatUint(followingID, 10))
	_ = redis.DeleteKey(ctx, consts.UserFollowingCountKey+strconv.FormatUint(followerID, 10))
	_ = redis.SAdd(ctx, consts.UserFollowDirtyKey, followerID, followingID)
}
