package job

import (
	"Lumen/internal/pkg/consts"
	"Lumen/internal/pkg/logger"
	"Lumen/internal/pkg/redis"
	"Lumen/internal/pkg/util"
	"Lumen/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// PostCounterJob 定时回写脏帖子的互动计数
type PostCounterJob struct {
	postRepo       repository.PostRepo
	engagementRepo repository.EngagementRepo
}

func NewPostCounterJob(
	postRepo repository.PostRepo,
	engagementRepo repository.EngagementRepo,
) *PostCounterJob {
	return &PostCounterJob{
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *PostCounterJob) Run() {
	traceID := "job-post-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.PostDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.PostDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get post dirty set error", "err", err)
		return
	}

	postIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert post set to int slice error", "err", err)
		return
	}

	synced := 0
	for _, pid := range postIDs {
		likes, err := s.engagementRepo.CountLikes(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "count post likes error", "pid", pid, "err", err)
			continue
		}
		comments, err := s.engagementRepo.CountComments(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "count post comments error", "pid", pid, "err", err)
			continue
		}
		saves, err := s.engagementRepo.CountSaves(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "count post saves error", "pid", pid, "err", err)
			continue
		}
		views, err := s.engagementRepo.CountViews(ctx, pid)
		if err != nil {
			log.ErrorContext(ctx, "count post views error", "pid", pid, "err", err)
			continue
		}

		err = s.postRepo.UpdatePostCounts(ctx, pid, likes, comments, saves, views)
		if err != nil {
			log.ErrorContext(ctx, "update post counts error", "pid", pid, "err", err)
			continue
		}
		synced++
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete post processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync post counters success",
		"dirty_count", len(postIDs),
		"synced_count", synced)
}
