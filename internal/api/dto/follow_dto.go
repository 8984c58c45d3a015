package dto

type FollowDTO struct {
	UserFollowedID uint64 `json:"user_followed_id" binding:"required"`
}
