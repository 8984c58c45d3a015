package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserEmailExist     = errors.New("邮箱已被注册")
	ErrUserNicknameExist  = errors.New("昵称已被占用")
	ErrPasswordIncorrect  = errors.New("密码错误")
	ErrUserFollowExist    = errors.New("已关注该用户")
	ErrUserFollowSelf     = errors.New("不能关注自己")
	ErrUserFollowNotFound = errors.New("未关注该用户")
	ErrQuickNotFound      = errors.New("Quick 不存在")
	ErrQuickNoChange      = errors.New("内容没有变化")
	ErrQuickNotOwner      = errors.New("无权操作他人的 Quick")
	UnauthorizedError     = errors.New("权限不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserEmailExist:     BadRequest,
	ErrUserNicknameExist:  BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrUserFollowExist:    BadRequest,
	ErrUserFollowSelf:     BadRequest,
	ErrUserFollowNotFound: NotFound,
	ErrQuickNotFound:      NotFound,
	ErrQuickNoChange:      BadRequest,
	ErrQuickNotOwner:      Forbidden,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
