package service

import (
	"Lumen/internal/api/config"
	"Lumen/internal/model"
	"Lumen/internal/pkg/consts"
	"Lumen/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// MaxInterestScore 兴趣分上限
const MaxInterestScore = 100

type InterestService interface {
	// RefreshUserInterests 根据近期点赞历史重算单个用户的兴趣画像。
	// 幂等：输入历史不变时重复执行结果一致
	RefreshUserInterests(ctx context.Context, userID uint64) error
}

type interestServiceImpl struct {
	engagementRepo repository.EngagementRepo
	interestRepo   repository.UserInterestRepo
	cfg            config.FeedConfig

	now func() time.Time
}

func NewInterestService(
	engagementRepo repository.EngagementRepo,
	interestRepo repository.UserInterestRepo,
	cfg config.FeedConfig,
) InterestService {
	return &interestServiceImpl{
		engagementRepo: engagementRepo,
		interestRepo:   interestRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (s *interestServiceImpl) RefreshUserInterests(ctx context.Context, userID uint64) error {
	since := s.now().AddDate(0, 0, -s.cfg.InterestLookbackDays)

	counts, err := s.engagementRepo.GetLikedHashtagCounts(ctx, userID, since, s.cfg.InterestTopN)
	if err != nil {
		return storeErr("aggregate liked hashtags", err)
	}

	for _, c := range counts {
		score := c.Count * 10
		if score > MaxInterestScore {
			score = MaxInterestScore
		}

		interest := &model.UserInterest{
			UserID:        userID,
			InterestType:  consts.InterestTypeHashtag,
			InterestValue: c.Name,
			Score:         score,
			UpdatedAt:     s.now(),
		}
		// 单个标签写失败不影响其余标签
		if err := s.interestRepo.UpsertInterest(ctx, interest); err != nil {
			log.ErrorContext(ctx, "upsert user interest error", "uid", userID, "tag", c.Name, "err", err)
		}
	}
	return nil
}
