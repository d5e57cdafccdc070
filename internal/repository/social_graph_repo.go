package repository

import (
	"Lumen/internal/model"
	"context"

	"gorm.io/gorm"
)

type SocialGraphRepo interface {
	GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetBlockedEitherIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetFriendLikedCounts(ctx context.Context, viewerID uint64, postIDs []uint64) (map[uint64]int, error)
	GetMutualFollowCounts(ctx context.Context, userID uint64) (map[uint64]int, error)
	GetFollowerCounts(ctx context.Context, userIDs []uint64) (map[uint64]int, error)
}

type socialGraphRepoImpl struct {
	db *gorm.DB
}

func NewSocialGraphRepo(db *gorm.DB) SocialGraphRepo {
	return &socialGraphRepoImpl{db: db}
}

// GetFollowingIDs 获取用户的关注列表（仅 ID）
func (r *socialGraphRepoImpl) GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *socialGraphRepoImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// GetBlockedEitherIDs 双向拉黑集合：我拉黑的 + 拉黑我的
func (r *socialGraphRepoImpl) GetBlockedEitherIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var blocked []uint64
	err := r.db.WithContext(ctx).Model(&model.UserBlock{}).
		Where("blocker_id = ?", userID).
		Pluck("blocked_id", &blocked).Error
	if err != nil {
		return nil, err
	}

	var blockers []uint64
	err = r.db.WithContext(ctx).Model(&model.UserBlock{}).
		Where("blocked_id = ?", userID).
		Pluck("blocker_id", &blockers).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]struct{}, len(blocked)+len(blockers))
	ids := make([]uint64, 0, len(blocked)+len(blockers))
	for _, id := range append(blocked, blockers...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetFriendLikedCounts 批量统计"viewer 关注的人点赞了这些帖子"的数量，
// 一次 GROUP BY 查询避免逐帖子回查
func (r *socialGraphRepoImpl) GetFriendLikedCounts(ctx context.Context, viewerID uint64, postIDs []uint64) (map[uint64]int, error) {
	if len(postIDs) == 0 {
		return map[uint64]int{}, nil
	}

	type row struct {
		PostID uint64
		Cnt    int
	}
	var rows []row
	err := r.db.WithContext(ctx).Table("post_likes").
		Select("post_likes.post_id AS post_id, COUNT(*) AS cnt").
		Joins("JOIN follows ON follows.following_id = post_likes.user_id").
		Where("follows.follower_id = ?", viewerID).
		Where("post_likes.post_id IN ?", postIDs).
		Group("post_likes.post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int, len(rows))
	for _, r := range rows {
		counts[r.PostID] = r.Cnt
	}
	return counts, nil
}

// GetMutualFollowCounts 二度关注统计：我关注的人还关注了谁，按共同关注数聚合
func (r *socialGraphRepoImpl) GetMutualFollowCounts(ctx context.Context, userID uint64) (map[uint64]int, error) {
	type row struct {
		UserID uint64
		Cnt    int
	}
	var rows []row
	err := r.db.WithContext(ctx).Table("follows AS f1").
		Select("f2.following_id AS user_id, COUNT(*) AS cnt").
		Joins("JOIN follows AS f2 ON f2.follower_id = f1.following_id").
		Where("f1.follower_id = ?", userID).
		Where("f2.following_id != ?", userID).
		Group("f2.following_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.Cnt
	}
	return counts, nil
}

func (r *socialGraphRepoImpl) GetFollowerCounts(ctx context.Context, userIDs []uint64) (map[uint64]int, error) {
	if len(userIDs) == 0 {
		return map[uint64]int{}, nil
	}

	type row struct {
		UserID uint64
		Cnt    int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Select("following_id AS user_id, COUNT(*) AS cnt").
		Where("following_id IN ?", userIDs).
		Group("following_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.Cnt
	}
	return counts, nil
}
