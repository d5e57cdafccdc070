package repository

import (
	"Lumen/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// TrendingHashtag 热门标签聚合行
type TrendingHashtag struct {
	ID          uint64
	Name        string
	PostCount   int
	RecentPosts int
}

type HashtagRepo interface {
	GetByName(ctx context.Context, name string) (*model.Hashtag, error)
	GetIDsByNames(ctx context.Context, names []string) ([]uint64, error)
	GetTrending(ctx context.Context, since time.Time, limit int) ([]*TrendingHashtag, error)
	GetActivePosterIDs(ctx context.Context, hashtagIDs []uint64, minPosts int) ([]uint64, error)
}

type hashtagRepoImpl struct {
	db *gorm.DB
}

func NewHashtagRepo(db *gorm.DB) HashtagRepo {
	return &hashtagRepoImpl{db: db}
}

// GetByName 按标签名查询，不存在时返回 (nil, nil)
func (r *hashtagRepoImpl) GetByName(ctx context.Context, name string) (*model.Hashtag, error) {
	var tag model.Hashtag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *hashtagRepoImpl) GetIDsByNames(ctx context.Context, names []string) ([]uint64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Hashtag{}).
		Where("name IN ?", names).
		Pluck("id", &ids).Error
	return ids, err
}

// GetTrending 近期关联内容数降序，同分按总内容数降序
func (r *hashtagRepoImpl) GetTrending(ctx context.Context, since time.Time, limit int) ([]*TrendingHashtag, error) {
	var rows []*TrendingHashtag
	err := r.db.WithContext(ctx).Table("hashtags").
		Select("hashtags.id AS id, hashtags.name AS name, hashtags.post_count AS post_count, COUNT(posts.id) AS recent_posts").
		Joins("LEFT JOIN post_hashtags ON post_hashtags.hashtag_id = hashtags.id").
		Joins("LEFT JOIN posts ON posts.id = post_hashtags.post_id AND posts.created_at >= ? AND posts.is_archived = ?", since, false).
		Where("hashtags.post_count > 0").
		Group("hashtags.id").
		Order("recent_posts DESC, hashtags.post_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetActivePosterIDs 在给定标签下发帖超过 minPosts 的作者（兴趣区活跃作者）
func (r *hashtagRepoImpl) GetActivePosterIDs(ctx context.Context, hashtagIDs []uint64, minPosts int) ([]uint64, error) {
	if len(hashtagIDs) == 0 {
		return nil, nil
	}
	var ids []uint64
	err := r.db.WithContext(ctx).Table("posts").
		Select("posts.user_id").
		Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
		Where("post_hashtags.hashtag_id IN ?", hashtagIDs).
		Where("posts.is_archived = ?", false).
		Group("posts.user_id").
		Having("COUNT(*) > ?", minPosts).
		Pluck("posts.user_id", &ids).Error
	return ids, err
}
