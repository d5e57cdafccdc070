package service

import (
	"Lumen/internal/model"
	"Lumen/internal/repository"
	"context"
	"time"
)

// 各仓储的内存假实现，零值即为空库

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func (f *fakeUserRepo) GetUser(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []uint64) ([]*model.User, error) {
	var result []*model.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

type fakePostRepo struct {
	posts  []*model.Post
	tagged map[uint64]struct{} // 命中兴趣标签的帖子 ID

	lastFilter *repository.CandidateFilter
	queryErr   error // 召回查询时注入的错误
}

func (f *fakePostRepo) QueryCandidates(_ context.Context, filter *repository.CandidateFilter) ([]*model.Post, error) {
	f.lastFilter = filter
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	exclude := make(map[uint64]struct{}, len(filter.ExcludeOwnerIDs))
	for _, id := range filter.ExcludeOwnerIDs {
		exclude[id] = struct{}{}
	}
	followed := make(map[uint64]struct{}, len(filter.FollowedOwnerIDs))
	for _, id := range filter.FollowedOwnerIDs {
		followed[id] = struct{}{}
	}

	var result []*model.Post
	for _, p := range f.posts {
		if _, ok := exclude[p.UserID]; ok {
			continue
		}
		if p.IsArchived || !p.User.IsActive {
			continue
		}
		if filter.PublicOwnersOnly && p.User.IsPrivate {
			continue
		}
		if filter.CreatedAfter != nil && !p.CreatedAt.After(*filter.CreatedAfter) {
			continue
		}

		included := false
		if _, ok := followed[p.UserID]; ok {
			included = true
		}
		if !included && len(filter.HashtagIDs) > 0 {
			if _, ok := f.tagged[p.ID]; ok {
				included = true
			}
		}
		if !included && filter.PopularityThreshold > 0 {
			if p.LikesCount+p.CommentsCount > filter.PopularityThreshold {
				included = true
			}
		}
		if included {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePostRepo) GetPostsByHashtag(_ context.Context, _ uint64, excludeOwnerIDs []uint64, limit, offset int) ([]*model.Post, error) {
	exclude := make(map[uint64]struct{}, len(excludeOwnerIDs))
	for _, id := range excludeOwnerIDs {
		exclude[id] = struct{}{}
	}
	var result []*model.Post
	for _, p := range f.posts {
		if _, ok := exclude[p.UserID]; ok {
			continue
		}
		result = append(result, p)
	}
	if offset >= len(result) {
		return nil, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], nil
}

func (f *fakePostRepo) UpdatePostCounts(_ context.Context, _ uint64, _, _, _, _ int64) error {
	return nil
}

type fakeSocialRepo struct {
	following    map[uint64][]uint64 // follower -> followings
	blocked      map[uint64][]uint64 // user -> 双向拉黑并集
	friendLikes  map[uint64]int      // postID -> 好友点赞数
	friendErr    error               // 好友点赞统计时注入的错误
	mutual       map[uint64]int      // userID -> 共同关注数
	followerCnts map[uint64]int      // userID -> 粉丝数
}

func (f *fakeSocialRepo) GetFollowingIDs(_ context.Context, userID uint64) ([]uint64, error) {
	return f.following[userID], nil
}

func (f *fakeSocialRepo) IsFollowing(_ context.Context, followerID, followingID uint64) (bool, error) {
	for _, id := range f.following[followerID] {
		if id == followingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSocialRepo) GetBlockedEitherIDs(_ context.Context, userID uint64) ([]uint64, error) {
	return f.blocked[userID], nil
}

func (f *fakeSocialRepo) GetFriendLikedCounts(_ context.Context, _ uint64, postIDs []uint64) (map[uint64]int, error) {
	if f.friendErr != nil {
		return nil, f.friendErr
	}
	result := make(map[uint64]int)
	for _, id := range postIDs {
		if n, ok := f.friendLikes[id]; ok {
			result[id] = n
		}
	}
	return result, nil
}

func (f *fakeSocialRepo) GetMutualFollowCounts(_ context.Context, _ uint64) (map[uint64]int, error) {
	return f.mutual, nil
}

func (f *fakeSocialRepo) GetFollowerCounts(_ context.Context, _ []uint64) (map[uint64]int, error) {
	return f.followerCnts, nil
}

type fakeEngagementRepo struct {
	liked        map[uint64]struct{}
	saved        map[uint64]struct{}
	interactions map[uint64]int // ownerID -> viewer 历史互动数
	hashtagLikes []repository.HashtagLikeCount
}

func (f *fakeEngagementRepo) GetLikedSet(_ context.Context, _ uint64, _ []uint64) (map[uint64]struct{}, error) {
	if f.liked == nil {
		return map[uint64]struct{}{}, nil
	}
	return f.liked, nil
}

func (f *fakeEngagementRepo) GetSavedSet(_ context.Context, _ uint64, _ []uint64) (map[uint64]struct{}, error) {
	if f.saved == nil {
		return map[uint64]struct{}{}, nil
	}
	return f.saved, nil
}

func (f *fakeEngagementRepo) GetOwnerInteractionCounts(_ context.Context, _ uint64, _ []uint64) (map[uint64]int, error) {
	if f.interactions == nil {
		return map[uint64]int{}, nil
	}
	return f.interactions, nil
}

func (f *fakeEngagementRepo) GetLikedHashtagCounts(_ context.Context, _ uint64, _ time.Time, limit int) ([]repository.HashtagLikeCount, error) {
	if limit < len(f.hashtagLikes) {
		return f.hashtagLikes[:limit], nil
	}
	return f.hashtagLikes, nil
}

func (f *fakeEngagementRepo) CountLikes(_ context.Context, _ uint64) (int64, error)    { return 0, nil }
func (f *fakeEngagementRepo) CountComments(_ context.Context, _ uint64) (int64, error) { return 0, nil }
func (f *fakeEngagementRepo) CountSaves(_ context.Context, _ uint64) (int64, error)    { return 0, nil }
func (f *fakeEngagementRepo) CountViews(_ context.Context, _ uint64) (int64, error)    { return 0, nil }

type fakeInterestRepo struct {
	interests []*model.UserInterest

	upserted []*model.UserInterest
	failFor  map[string]error // InterestValue -> 写入时注入的错误
}

func (f *fakeInterestRepo) GetTopInterests(_ context.Context, _ uint64, _ string, n int) ([]*model.UserInterest, error) {
	if n < len(f.interests) {
		return f.interests[:n], nil
	}
	return f.interests, nil
}

func (f *fakeInterestRepo) UpsertInterest(_ context.Context, interest *model.UserInterest) error {
	if err, ok := f.failFor[interest.InterestValue]; ok {
		return err
	}

	for i, existing := range f.upserted {
		if existing.InterestValue == interest.InterestValue {
			f.upserted[i] = interest
			return nil
		}
	}
	f.upserted = append(f.upserted, interest)
	return nil
}

type fakeHashtagRepo struct {
	byName    map[string]*model.Hashtag
	idsByName map[string]uint64
	trending  []*repository.TrendingHashtag
	posterIDs []uint64
}

func (f *fakeHashtagRepo) GetByName(_ context.Context, name string) (*model.Hashtag, error) {
	return f.byName[name], nil
}

func (f *fakeHashtagRepo) GetIDsByNames(_ context.Context, names []string) ([]uint64, error) {
	var ids []uint64
	for _, name := range names {
		if id, ok := f.idsByName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeHashtagRepo) GetTrending(_ context.Context, _ time.Time, limit int) ([]*repository.TrendingHashtag, error) {
	if limit < len(f.trending) {
		return f.trending[:limit], nil
	}
	return f.trending, nil
}

func (f *fakeHashtagRepo) GetActivePosterIDs(_ context.Context, _ []uint64, _ int) ([]uint64, error) {
	return f.posterIDs, nil
}
