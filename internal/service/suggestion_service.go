package service

import (
	"Lumen/internal/api/config"
	"Lumen/internal/api/dto"
	"Lumen/internal/pkg/consts"
	"Lumen/internal/pkg/minio"
	"Lumen/internal/repository"
	"context"
	"sort"
)

type SuggestionService interface {
	// GetSuggestedUsers 关注推荐：二度关注优先，其次兴趣区活跃作者
	GetSuggestedUsers(ctx context.Context, viewerID uint64) ([]*dto.SuggestedUserDTO, error)
}

type suggestionServiceImpl struct {
	userRepo     repository.UserRepo
	socialRepo   repository.SocialGraphRepo
	interestRepo repository.UserInterestRepo
	hashtagRepo  repository.HashtagRepo
	cfg          config.FeedConfig
}

func NewSuggestionService(
	userRepo repository.UserRepo,
	socialRepo repository.SocialGraphRepo,
	interestRepo repository.UserInterestRepo,
	hashtagRepo repository.HashtagRepo,
	cfg config.FeedConfig,
) SuggestionService {
	return &suggestionServiceImpl{
		userRepo:     userRepo,
		socialRepo:   socialRepo,
		interestRepo: interestRepo,
		hashtagRepo:  hashtagRepo,
		cfg:          cfg,
	}
}

func (s *suggestionServiceImpl) GetSuggestedUsers(ctx context.Context, viewerID uint64) ([]*dto.SuggestedUserDTO, error) {
	viewer, err := s.userRepo.GetUser(ctx, viewerID)
	if err != nil {
		return nil, storeErr("load viewer", err)
	}
	if viewer == nil || !viewer.IsActive {
		return nil, ErrUserNotFound
	}

	mutual, err := s.socialRepo.GetMutualFollowCounts(ctx, viewerID)
	if err != nil {
		return nil, storeErr("load mutual follows", err)
	}

	posterIDs, err := s.interestPosterIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	following, err := s.socialRepo.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, storeErr("load following list", err)
	}
	blocked, err := s.socialRepo.GetBlockedEitherIDs(ctx, viewerID)
	if err != nil {
		return nil, storeErr("load block list", err)
	}

	skip := make(map[uint64]struct{}, len(following)+len(blocked)+1)
	skip[viewerID] = struct{}{}
	for _, id := range following {
		skip[id] = struct{}{}
	}
	for _, id := range blocked {
		skip[id] = struct{}{}
	}

	candidateIDs := make([]uint64, 0, len(mutual)+len(posterIDs))
	seen := make(map[uint64]struct{}, len(mutual)+len(posterIDs))
	for id := range mutual {
		if _, ok := skip[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		candidateIDs = append(candidateIDs, id)
	}
	for _, id := range posterIDs {
		if _, ok := skip[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		candidateIDs = append(candidateIDs, id)
	}
	if len(candidateIDs) == 0 {
		return []*dto.SuggestedUserDTO{}, nil
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, candidateIDs)
	if err != nil {
		return nil, storeErr("load suggested users", err)
	}
	followers, err := s.socialRepo.GetFollowerCounts(ctx, candidateIDs)
	if err != nil {
		return nil, storeErr("load follower counts", err)
	}

	list := make([]*dto.SuggestedUserDTO, 0, len(users))
	for _, u := range users {
		if !u.IsActive {
			continue
		}
		item := &dto.SuggestedUserDTO{
			UserID:         u.ID,
			Username:       u.Username,
			FullName:       u.FullName,
			IsVerified:     u.IsVerified,
			FollowersCount: followers[u.ID],
			MutualFollows:  mutual[u.ID],
		}
		if u.AvatarURL != nil {
			url := minio.ResolveURL(*u.AvatarURL)
			item.AvatarURL = &url
		}
		list = append(list, item)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].MutualFollows != list[j].MutualFollows {
			return list[i].MutualFollows > list[j].MutualFollows
		}
		if list[i].FollowersCount != list[j].FollowersCount {
			return list[i].FollowersCount > list[j].FollowersCount
		}
		return list[i].UserID > list[j].UserID
	})

	if len(list) > s.cfg.SuggestedUserLimit {
		list = list[:s.cfg.SuggestedUserLimit]
	}
	return list, nil
}

// interestPosterIDs 兴趣标签下的活跃作者候选
func (s *suggestionServiceImpl) interestPosterIDs(ctx context.Context, viewerID uint64) ([]uint64, error) {
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

	posterIDs, err := s.hashtagRepo.GetActivePosterIDs(ctx, tagIDs, s.cfg.SuggestedMinPosts)
	if err != nil {
		return nil, storeErr("load interest posters", err)
	}
	return posterIDs, nil
}
