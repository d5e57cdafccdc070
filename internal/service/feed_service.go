package service

import (
	"Lumen/internal/api/config"
	"Lumen/internal/api/dto"
	"Lumen/internal/model"
	"Lumen/internal/pkg/consts"
	"Lumen/internal/pkg/minio"
	"Lumen/internal/pkg/util"
	"Lumen/internal/ranking"
	"Lumen/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

// FeedMode 候选生成模式
type FeedMode string

const (
	ModeFollowedFeed FeedMode = "followed" // 关注流：关注作者 + 兴趣召回
	ModeDiscovery    FeedMode = "discovery" // 发现页：未关注的公开内容
)

type FeedService interface {
	// GetFeed 拉取一页个性化排序结果。
	// weights 为 nil 时使用默认权重，传入自定义权重可做排序实验
	GetFeed(ctx context.Context, viewerID uint64, mode FeedMode, limit, offset int, weights *ranking.Weights) (*dto.FeedPageDTO, error)
}

type feedServiceImpl struct {
	userRepo       repository.UserRepo
	postRepo       repository.PostRepo
	socialRepo     repository.SocialGraphRepo
	engagementRepo repository.EngagementRepo
	interestRepo   repository.UserInterestRepo
	hashtagRepo    repository.HashtagRepo

	cfg     config.FeedConfig
	scorer  ranking.Scorer
	weights ranking.Weights

	now func() time.Time
}

func NewFeedService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	socialRepo repository.SocialGraphRepo,
	engagementRepo repository.EngagementRepo,
	interestRepo repository.UserInterestRepo,
	hashtagRepo repository.HashtagRepo,
	cfg config.FeedConfig,
	rankingCfg config.RankingConfig,
) FeedService {
	return &feedServiceImpl{
		userRepo:       userRepo,
		postRepo:       postRepo,
		socialRepo:     socialRepo,
		engagementRepo: engagementRepo,
		interestRepo:   interestRepo,
		hashtagRepo:    hashtagRepo,
		cfg:            cfg,
		scorer:         ranking.NewScorer(rankingCfg.Scoring),
		weights:        rankingCfg.Weights,
		now:            time.Now,
	}
}

func (s *feedServiceImpl) GetFeed(ctx context.Context, viewerID uint64, mode FeedMode, limit, offset int, weights *ranking.Weights) (*dto.FeedPageDTO, error) {
	if mode != ModeFollowedFeed && mode != ModeDiscovery {
		return nil, ErrParamInvalid
	}
	if offset < 0 {
		offset = 0
	}

	viewer, err := s.userRepo.GetUser(ctx, viewerID)
	if err != nil {
		return nil, storeErr("load viewer", err)
	}
	if viewer == nil || !viewer.IsActive {
		return nil, ErrUserNotFound
	}

	if limit <= 0 {
		return emptyPage(limit, offset), nil
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	w := s.weights
	if weights != nil {
		w = *weights
	}

	candidates, followingSet, err := s.generateCandidates(ctx, viewerID, mode)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return emptyPage(limit, offset), nil
	}

	scored, err := s.scoreCandidates(ctx, viewerID, candidates, followingSet, w)
	if err != nil {
		return nil, err
	}

	page := ranking.Rank(scored, limit, offset, s.cfg.MaxPageSize)

	byID := make(map[uint64]*model.Post, len(candidates))
	for _, p := range candidates {
		byID[p.ID] = p
	}
	return s.hydrate(ctx, viewerID, page, byID, followingSet, limit, offset)
}

// generateCandidates 组装候选集，同时返回关注集合供打分复用
func (s *feedServiceImpl) generateCandidates(ctx context.Context, viewerID uint64, mode FeedMode) ([]*model.Post, map[uint64]struct{}, error) {
	blocked, err := s.socialRepo.GetBlockedEitherIDs(ctx, viewerID)
	if err != nil {
		return nil, nil, storeErr("load block list", err)
	}

	following, err := s.socialRepo.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, nil, storeErr("load following list", err)
	}
	followingSet := make(map[uint64]struct{}, len(following))
	for _, id := range following {
		followingSet[id] = struct{}{}
	}

	tagIDs, err := s.topInterestTagIDs(ctx, viewerID)
	if err != nil {
		return nil, nil, err
	}

	// 自己的内容永不出现在自己的流里
	exclude := append([]uint64{viewerID}, blocked...)

	filter := &repository.CandidateFilter{
		HashtagIDs: tagIDs,
		Limit:      s.cfg.CandidatePool,
	}

	switch mode {
	case ModeFollowedFeed:
		filter.FollowedOwnerIDs = following
	case ModeDiscovery:
		// 已关注作者的内容不进发现页
		exclude = append(exclude, following...)
		filter.PublicOwnersOnly = true
		filter.PopularityThreshold = s.cfg.PopularityThreshold
		since := s.now().AddDate(0, 0, -s.cfg.DiscoveryWindowDays)
		filter.CreatedAfter = &since
	}
	filter.ExcludeOwnerIDs = exclude

	posts, err := s.postRepo.QueryCandidates(ctx, filter)
	if err != nil {
		return nil, nil, storeErr("query candidates", err)
	}
	return posts, followingSet, nil
}

// topInterestTagIDs 取 viewer 分数最高的若干兴趣标签并映射为标签 ID
func (s *feedServiceImpl) topInterestTagIDs(ctx context.Context, viewerID uint64) ([]uint64, error) {
	interests, err := s.interestRepo.GetTopInterests(ctx, viewerID, consts.InterestTypeHashtag, s.cfg.TopInterestTags)
	if err != nil {
		return nil, storeErr("load interests", err)
	}
	if len(interests) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(interests))
	for _, it := range interests {
		names = append(names, it.InterestValue)
	}

	tagIDs, err := s.hashtagRepo.GetIDsByNames(ctx, names)
	if err != nil {
		return nil, storeErr("resolve interest tags", err)
	}
	return tagIDs, nil
}

// scoreCandidates 批量拉取打分信号后对每个候选计算加权分，
// 信号按候选集一次性聚合，不做逐条回查
func (s *feedServiceImpl) scoreCandidates(ctx context.Context, viewerID uint64, posts []*model.Post, followingSet map[uint64]struct{}, w ranking.Weights) ([]ranking.Scored, error) {
	postIDs := make([]uint64, 0, len(posts))
	ownerIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		ownerIDs = append(ownerIDs, p.UserID)
	}
	ownerIDs = util.DedupUint64(ownerIDs)

	friendLikes, err := s.socialRepo.GetFriendLikedCounts(ctx, viewerID, postIDs)
	if err != nil {
		return nil, storeErr("load friend likes", err)
	}
	interactions, err := s.engagementRepo.GetOwnerInteractionCounts(ctx, viewerID, ownerIDs)
	if err != nil {
		return nil, storeErr("load interaction history", err)
	}

	now := s.now()
	scored := make([]ranking.Scored, 0, len(posts))
	for _, p := range posts {
		_, followed := followingSet[p.UserID]
		sig := ranking.Signals{
			Age:         now.Sub(p.CreatedAt),
			Likes:       p.LikesCount,
			Comments:    p.CommentsCount,
			Saves:       p.SavesCount,
			Following:   followed,
			FriendLikes: friendLikes[p.ID],
			Affinity:    interactions[p.UserID],
		}
		scored = append(scored, ranking.Scored{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			Score:     s.scorer.Score(sig, w),
		})
	}
	return scored, nil
}

// hydrate 补全媒体与 viewer 相关标记，产出最终页
func (s *feedServiceImpl) hydrate(ctx context.Context, viewerID uint64, page []ranking.Scored, byID map[uint64]*model.Post, followingSet map[uint64]struct{}, limit, offset int) (*dto.FeedPageDTO, error) {
	pageIDs := make([]uint64, 0, len(page))
	for _, sc := range page {
		pageIDs = append(pageIDs, sc.ID)
	}

	liked, err := s.engagementRepo.GetLikedSet(ctx, viewerID, pageIDs)
	if err != nil {
		return nil, storeErr("load liked set", err)
	}
	saved, err := s.engagementRepo.GetSavedSet(ctx, viewerID, pageIDs)
	if err != nil {
		return nil, storeErr("load saved set", err)
	}

	list := make([]*dto.FeedPostDTO, 0, len(page))
	for _, sc := range page {
		p := byID[sc.ID]
		if p == nil {
			continue
		}
		item := toFeedPostDTO(p, sc.Score)
		_, item.Liked = liked[p.ID]
		_, item.Saved = saved[p.ID]
		_, item.IsFollowing = followingSet[p.UserID]
		list = append(list, item)
	}

	return &dto.FeedPageDTO{
		List:   list,
		Count:  len(list),
		Limit:  limit,
		Offset: offset,
	}, nil
}

// toFeedPostDTO 模型到 DTO 的映射，媒体保持 media_order 升序
func toFeedPostDTO(p *model.Post, score float64) *dto.FeedPostDTO {
	item := &dto.FeedPostDTO{}
	_ = copier.Copy(item, p)

	item.Score = score
	item.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	item.Username = p.User.Username
	item.FullName = p.User.FullName
	item.IsVerified = p.User.IsVerified
	if p.User.AvatarURL != nil {
		url := minio.ResolveURL(*p.User.AvatarURL)
		item.AvatarURL = &url
	}

	item.Media = make([]*dto.FeedMediaDTO, 0, len(p.Media))
	for _, m := range p.Media {
		media := &dto.FeedMediaDTO{}
		_ = copier.Copy(media, &m)
		media.MediaURL = minio.ResolveURL(m.MediaURL)
		// 封面只对视频有意义
		media.CoverURL = nil
		if m.IsVideo() && m.CoverURL != nil {
			cover := minio.ResolveURL(*m.CoverURL)
			media.CoverURL = &cover
		}
		item.Media = append(item.Media, media)
	}
	return item
}

func emptyPage(limit, offset int) *dto.FeedPageDTO {
	return &dto.FeedPageDTO{
		List:   []*dto.FeedPostDTO{},
		Count:  0,
		Limit:  limit,
		Offset: offset,
	}
}
