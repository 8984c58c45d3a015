package service

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

// buildUserDTO 组装对外的用户信息，粉丝数由调用方统计后传入
func buildUserDTO(user *model.User, followers int64) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = user.ID
	userDTO.Followers = followers
	if user.BirthDate != nil {
		birthDate := user.BirthDate.Format(dateLayout)
		userDTO.BirthDate = &birthDate
	}
	return userDTO, nil
}

// buildQuickDTO 组装对外的 Quick 信息
// 已删除的 Quick 保留行但掩蔽内容，由 is_deleted 标记状态
func buildQuickDTO(quick *model.Quick) *dto.QuickDTO {
	quickDTO := &dto.QuickDTO{
		ID:        quick.ID,
		By:        quick.Author.Nickname,
		IsDeleted: quick.IsDeleted,
		CreatedAt: quick.CreatedAt.Format(timeLayout),
	}
	if !quick.IsDeleted {
		quickDTO.Content = quick.Content
	}
	if quick.UpdatedAt != nil {
		updatedAt := quick.UpdatedAt.Format(timeLayout)
		quickDTO.UpdatedAt = &updatedAt
	}
	return quickDTO
}

func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, ErrParamInvalid
	}
	return &t, nil
}
