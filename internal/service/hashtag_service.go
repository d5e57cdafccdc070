package service

import (
	"Lumen/internal/api/config"
	"Lumen/internal/api/dto"
	"Lumen/internal/pkg/util"
	"Lumen/internal/repository"
	"context"
	"time"
)

type HashtagService interface {
	// GetTrendingHashtags 近期关联内容量降序的热门标签
	GetTrendingHashtags(ctx context.Context) ([]*dto.TrendingHashtagDTO, error)
	// GetPostsByHashtag 标签页内容，最新在前；viewerID 为 0 表示匿名访问
	GetPostsByHashtag(ctx context.Context, viewerID uint64, name string, limit, offset int) (*dto.FeedPageDTO, error)
}

type hashtagServiceImpl struct {
	postRepo    repository.PostRepo
	socialRepo  repository.SocialGraphRepo
	hashtagRepo repository.HashtagRepo
	cfg         config.FeedConfig

	now func() time.Time
}

func NewHashtagService(
	postRepo repository.PostRepo,
	socialRepo repository.SocialGraphRepo,
	hashtagRepo repository.HashtagRepo,
	cfg config.FeedConfig,
) HashtagService {
	return &hashtagServiceImpl{
		postRepo:    postRepo,
		socialRepo:  socialRepo,
		hashtagRepo: hashtagRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *hashtagServiceImpl) GetTrendingHashtags(ctx context.Context) ([]*dto.TrendingHashtagDTO, error) {
	since := s.now().AddDate(0, 0, -s.cfg.TrendingWindowDays)

	rows, err := s.hashtagRepo.GetTrending(ctx, since, s.cfg.TrendingLimit)
	if err != nil {
		return nil, storeErr("query trending hashtags", err)
	}

	list := make([]*dto.TrendingHashtagDTO, 0, len(rows))
	for _, row := range rows {
		list = append(list, &dto.TrendingHashtagDTO{
			Name:        row.Name,
			PostCount:   row.PostCount,
			RecentPosts: row.RecentPosts,
		})
	}
	return list, nil
}

func (s *hashtagServiceImpl) GetPostsByHashtag(ctx context.Context, viewerID uint64, name string, limit, offset int) (*dto.FeedPageDTO, error) {
	name = util.NormalizeTag(name)
	if name == "" {
		return nil, ErrParamInvalid
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	tag, err := s.hashtagRepo.GetByName(ctx, name)
	if err != nil {
		return nil, storeErr("load hashtag", err)
	}
	if tag == nil {
		return nil, ErrHashtagNotFound
	}

	// 登录用户套用双向拉黑过滤
	var exclude []uint64
	if viewerID > 0 {
		blocked, err := s.socialRepo.GetBlockedEitherIDs(ctx, viewerID)
		if err != nil {
			return nil, storeErr("load block list", err)
		}
		exclude = blocked
	}

	posts, err := s.postRepo.GetPostsByHashtag(ctx, tag.ID, exclude, limit, offset)
	if err != nil {
		return nil, storeErr("query hashtag posts", err)
	}

	list := make([]*dto.FeedPostDTO, 0, len(posts))
	for _, p := range posts {
		list = append(list, toFeedPostDTO(p, 0))
	}
	return &dto.FeedPageDTO{
		List:   list,
		Count:  len(list),
		Limit:  limit,
		Offset: offset,
	}, nil
}
