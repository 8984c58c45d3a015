package consts

const (
	UserProfileKey        = "user:profile:"
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	UserFollowDirtyKey    = "user:follow:dirty"
)
