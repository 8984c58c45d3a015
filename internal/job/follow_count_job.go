package job

import (
	"Quicker/internal/pkg/consts"
	"Quicker/internal/pkg/logger"
	"Quicker/internal/pkg/redis"
	"Quicker/internal/pkg/util"
	"Quicker/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// FollowCountJob 回刷关注计数缓存
// 关注关系变化时对应键只做删除，脏集合记录受影响的用户，定时统一预热
type FollowCountJob struct {
	userFollowSvc service.UserFollowService
}

func NewFollowCountJob(userFollowSvc service.UserFollowService) *FollowCountJob {
	return &FollowCountJob{userFollowSvc: userFollowSvc}
}

func (s *FollowCountJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.UserFollowDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.UserFollowDirtyKey, processingKey)
	if err != nil {
		// 脏集合为空是常态，只记录真实的 Redis 故障
		if !errors.Is(err, goredis.Nil) {
			log.ErrorContext(ctx, "rotate dirty set error", "err", err)
		}
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "err", err)
		return
	}

	set, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert set to int slice error", "err", err)
		return
	}

	for _, v := range set {
		if _, err = s.userFollowSvc.GetUserFollowerCount(ctx, v); err != nil {
			log.ErrorContext(ctx, "refresh follower count error", "user_id", v, "err", err)
		}
		if _, err = s.userFollowSvc.GetUserFollowingCount(ctx, v); err != nil {
			log.ErrorContext(ctx, "refresh following count error", "user_id", v, "err", err)
		}
	}

	_ = redis.DeleteKey(ctx, processingKey)
	log.InfoContext(ctx, "follow count cache refreshed", "users", len(set))
}
