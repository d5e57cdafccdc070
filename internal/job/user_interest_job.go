package job

import (
	"Lumen/internal/pkg/consts"
	"Lumen/internal/pkg/logger"
	"Lumen/internal/pkg/redis"
	"Lumen/internal/pkg/util"
	"Lumen/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// UserInterestJob 定时重算脏用户的兴趣画像
type UserInterestJob struct {
	interestSvc service.InterestService
}

func NewUserInterestJob(interestSvc service.InterestService) *UserInterestJob {
	return &UserInterestJob{
		interestSvc: interestSvc,
	}
}

func (s *UserInterestJob) Run() {
	traceID := "job-interest-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.UserInterestDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.UserInterestDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get interest dirty set error", "err", err)
		return
	}

	userIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert interest set to int slice error", "err", err)
		return
	}

	refreshed := 0
	for _, uid := range userIDs {
		err := s.interestSvc.RefreshUserInterests(ctx, uid)
		if err != nil {
			log.ErrorContext(ctx, "refresh user interests error", "uid", uid, "err", err)
			continue
		}
		refreshed++
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete interest processing set error", "err", err)
	}

	log.InfoContext(ctx, "refresh user interests success",
		"dirty_count", len(userIDs),
		"refreshed_count", refreshed)
}
