package service

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/model"
	"Quicker/internal/pkg/consts"
	"Quicker/internal/pkg/redis"
	"Quicker/internal/pkg/security"
	"Quicker/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByNickname(ctx context.Context, nickname string) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, dto *dto.UpdateUserDTO) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo      repository.UserRepo
	userFollowSvc UserFollowService
}

func NewUserService(userRepo repository.UserRepo, userFollowSvc UserFollowService) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		userFollowSvc: userFollowSvc,
	}
}

// Register 注册用户，邮箱与昵称均要求唯一
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserEmailExist
	}

	findUser, err = s.userRepo.GetUserByNickname(ctx, regDTO.Nickname)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserNicknameExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	birthDate, err := parseBirthDate(regDTO.BirthDate)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:     regDTO.Email,
		Nickname:  regDTO.Nickname,
		Password:  passwordHash,
		FirstName: regDTO.FirstName,
		LastName:  regDTO.LastName,
		BirthDate: birthDate,
	}

	return s.userRepo.CreateUser(ctx, user)
}

// Login 校验凭据并签发绑定邮箱的 Token
func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	err = security.CheckPasswordHash(credDTO.Password, user.Password)
	if err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetUserByEmail(ctx, email)
}

// GetUserByNickname 获取公开主页信息
// 基础资料走缓存，粉丝数单独从计数缓存读取，避免关注变化导致资料缓存失效
func (s *UserServiceImpl) GetUserByNickname(ctx context.Context, nickname string) (*dto.UserDTO, error) {
	key := consts.UserProfileKey + nickname

	value, err := redis.GetValue(ctx, key)
	if err == nil && value != "" {
		var userDTO *dto.UserDTO
		if err = json.Unmarshal([]byte(value), &userDTO); err == nil {
			followers, err := s.userFollowSvc.GetUserFollowerCount(ctx, userDTO.UserID)
			if err != nil {
				return nil, err
			}
			userDTO.Followers = followers
			return userDTO, nil
		}
	}

	user, err := s.userRepo.GetUserByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO, err := buildUserDTO(user, 0)
	if err != nil {
		return nil, err
	}

	jsonStr, err := json.Marshal(userDTO)
	if err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Hour*1)
	}

	followers, err := s.userFollowSvc.GetUserFollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	userDTO.Followers = followers
	return userDTO, nil
}

// UpdateUser 整体更新个人资料，昵称、邮箱冲突时拒绝
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if updateDTO.Email != user.Email {
		exist, err := s.userRepo.GetUserByEmail(ctx, updateDTO.Email)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrUserEmailExist
		}
	}

	if updateDTO.Nickname != user.Nickname {
		exist, err := s.userRepo.GetUserByNickname(ctx, updateDTO.Nickname)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrUserNicknameExist
		}
	}

	passwordHash, err := security.HashPassword(updateDTO.Password)
	if err != nil {
		return err
	}

	birthDate, err := parseBirthDate(updateDTO.BirthDate)
	if err != nil {
		return err
	}

	oldNickname := user.Nickname

	user.Email = updateDTO.Email
	user.Nickname = updateDTO.Nickname
	user.Password = passwordHash
	user.FirstName = updateDTO.FirstName
	user.LastName = updateDTO.LastName
	user.BirthDate = birthDate

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.UserProfileKey+oldNickname)
	_ = redis.DeleteKey(ctx, consts.UserProfileKey+user.Nickname)
	return nil
}

// DeleteUser 注销账号，级联删除由仓储层单事务完成
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.UserProfileKey+user.Nickname)
	return nil
}
