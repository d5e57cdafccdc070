package repository

import (
	"Lumen/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// HashtagLikeCount 用户在窗口期内点赞过的标签及次数
type HashtagLikeCount struct {
	Name  string
	Count int
}

type EngagementRepo interface {
	GetLikedSet(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]struct{}, error)
	GetSavedSet(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]struct{}, error)
	GetOwnerInteractionCounts(ctx context.Context, viewerID uint64, ownerIDs []uint64) (map[uint64]int, error)
	GetLikedHashtagCounts(ctx context.Context, userID uint64, since time.Time, limit int) ([]HashtagLikeCount, error)
	CountLikes(ctx context.Context, postID uint64) (int64, error)
	CountComments(ctx context.Context, postID uint64) (int64, error)
	CountSaves(ctx context.Context, postID uint64) (int64, error)
	CountViews(ctx context.Context, postID uint64) (int64, error)
}

type engagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &engagementRepoImpl{db: db}
}

// GetLikedSet 返回给定帖子中 viewer 点过赞的子集
func (r *engagementRepoImpl) GetLikedSet(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]struct{}, error) {
	if len(postIDs) == 0 {
		return map[uint64]struct{}{}, nil
	}
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

// GetSavedSet 返回给定帖子中 viewer 收藏过的子集
func (r *engagementRepoImpl) GetSavedSet(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]struct{}, error) {
	if len(postIDs) == 0 {
		return map[uint64]struct{}{}, nil
	}
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.SavedPost{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toSet(ids), nil
}

// GetOwnerInteractionCounts 批量统计 viewer 点赞各作者内容的历史次数（亲密度信号）
func (r *engagementRepoImpl) GetOwnerInteractionCounts(ctx context.Context, viewerID uint64, ownerIDs []uint64) (map[uint64]int, error) {
	if len(ownerIDs) == 0 {
		return map[uint64]int{}, nil
	}

	type row struct {
		OwnerID uint64
		Cnt     int
	}
	var rows []row
	err := r.db.WithContext(ctx).Table("post_likes").
		Select("posts.user_id AS owner_id, COUNT(*) AS cnt").
		Joins("JOIN posts ON posts.id = post_likes.post_id").
		Where("post_likes.user_id = ?", viewerID).
		Where("posts.user_id IN ?", ownerIDs).
		Group("posts.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int, len(rows))
	for _, r := range rows {
		counts[r.OwnerID] = r.Cnt
	}
	return counts, nil
}

// GetLikedHashtagCounts 兴趣画像刷新的聚合源：窗口期内点赞内容挂的标签计数，
// 按次数降序截取
func (r *engagementRepoImpl) GetLikedHashtagCounts(ctx context.Context, userID uint64, since time.Time, limit int) ([]HashtagLikeCount, error) {
	var rows []HashtagLikeCount
	err := r.db.WithContext(ctx).Table("post_likes").
		Select("hashtags.name AS name, COUNT(*) AS count").
		Joins("JOIN post_hashtags ON post_hashtags.post_id = post_likes.post_id").
		Joins("JOIN hashtags ON hashtags.id = post_hashtags.hashtag_id").
		Where("post_likes.user_id = ?", userID).
		Where("post_likes.created_at >= ?", since).
		Group("hashtags.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *engagementRepoImpl) CountLikes(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) CountComments(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) CountSaves(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SavedPost{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *engagementRepoImpl) CountViews(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostView{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func toSet(ids []uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
