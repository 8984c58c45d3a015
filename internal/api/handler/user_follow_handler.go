package handler

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/pkg/response"
	"Quicker/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var followDTO dto.FollowDTO
	if err := c.ShouldBind(&followDTO); err != nil {
		response.Error(c, err)
		return
	}

	err := s.userFollowSvc.Follow(c.Request.Context(), userId, followDTO.UserFollowedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var followDTO dto.FollowDTO
	if err := c.ShouldBind(&followDTO); err != nil {
		response.Error(c, err)
		return
	}

	err := s.userFollowSvc.Unfollow(c.Request.Context(), userId, followDTO.UserFollowedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) GetFollowedUsers(c *gin.Context) {
	userId := c.GetUint64("user_id")

	followed, err := s.userFollowSvc.GetFollowedUsers(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followed)
}

func (s *UserFollowHandler) GetFollowers(c *gin.Context) {
	userId := c.GetUint64("user_id")

	followers, err := s.userFollowSvc.GetFollowers(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}
