package handler

import (
	"Quicker/internal/api/dto"
	"Quicker/internal/pkg/response"
	"Quicker/internal/pkg/util"
	"Quicker/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuickHandler struct {
	quickSvc service.QuickService
}

func NewQuickHandler(quickSvc service.QuickService) *QuickHandler {
	return &QuickHandler{quickSvc: quickSvc}
}

// Home 首页信息流，登录用户看关注流，匿名用户看全站流
func (s *QuickHandler) Home(c *gin.Context) {
	userId := c.GetUint64("user_id")

	feed, err := s.quickSvc.GetFeed(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *QuickHandler) CreateQuick(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var createDTO dto.CreateQuickDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	quick, err := s.quickSvc.CreateQuick(c.Request.Context(), userId, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, quick)
}

func (s *QuickHandler) GetQuick(c *gin.Context) {
	id, err := s.parseQuickID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	quick, err := s.quickSvc.GetQuick(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, quick)
}

func (s *QuickHandler) UpdateQuick(c *gin.Context) {
	userId := c.GetUint64("user_id")
	id, err := s.parseQuickID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateQuickDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	err = s.quickSvc.UpdateQuick(c.Request.Context(), userId, id, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *QuickHandler) DeleteQuick(c *gin.Context) {
	userId := c.GetUint64("user_id")
	id, err := s.parseQuickID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.quickSvc.DeleteQuick(c.Request.Context(), userId, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *QuickHandler) parseQuickID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
