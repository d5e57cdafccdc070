package repository

import (
	"Lumen/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// CandidateFilter 候选集查询条件。
// FollowedOwnerIDs / HashtagIDs / PopularityThreshold 三个召回分支取并集，
// 一个分支都没有时直接返回空集（不是错误）。
type CandidateFilter struct {
	ExcludeOwnerIDs     []uint64   // 作者排除集：viewer 本人 + 双向拉黑（发现页还包含已关注作者）
	FollowedOwnerIDs    []uint64   // 关注召回：作者在关注列表中
	HashtagIDs          []uint64   // 兴趣召回：内容挂了这些标签
	PopularityThreshold int        // 热门召回：likes + comments 超过该阈值，0 表示关闭
	PublicOwnersOnly    bool       // 仅公开账号（发现页）
	CreatedAfter        *time.Time // 时间窗口下界
	Limit               int        // 候选池上限
}

type PostRepo interface {
	QueryCandidates(ctx context.Context, f *CandidateFilter) ([]*model.Post, error)
	GetPostsByHashtag(ctx context.Context, hashtagID uint64, excludeOwnerIDs []uint64, limit, offset int) ([]*model.Post, error)
	UpdatePostCounts(ctx context.Context, postID uint64, likes, comments, saves, views int64) error
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

// QueryCandidates 执行候选集查询，按创建时间倒序截取候选池，排序交给上层
func (r *postRepoImpl) QueryCandidates(ctx context.Context, f *CandidateFilter) ([]*model.Post, error) {
	include := r.buildIncludeBranches(f)
	if include == nil {
		return []*model.Post{}, nil
	}

	q := r.db.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.is_archived = ?", false).
		Where("users.is_active = ?", true)

	if len(f.ExcludeOwnerIDs) > 0 {
		q = q.Where("posts.user_id NOT IN ?", f.ExcludeOwnerIDs)
	}
	if f.PublicOwnersOnly {
		q = q.Where("users.is_private = ?", false)
	}
	if f.CreatedAfter != nil {
		q = q.Where("posts.created_at >= ?", *f.CreatedAfter)
	}
	q = q.Where(include)

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var posts []*model.Post
	err := q.Preload("User").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("media_order ASC")
		}).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// buildIncludeBranches 组装召回分支的 OR 条件
func (r *postRepoImpl) buildIncludeBranches(f *CandidateFilter) *gorm.DB {
	var include *gorm.DB

	if len(f.FollowedOwnerIDs) > 0 {
		include = r.db.Where("posts.user_id IN ?", f.FollowedOwnerIDs)
	}
	if len(f.HashtagIDs) > 0 {
		sub := r.db.Model(&model.PostHashtag{}).
			Select("post_id").
			Where("hashtag_id IN ?", f.HashtagIDs)
		branch := r.db.Where("posts.id IN (?)", sub)
		if include == nil {
			include = branch
		} else {
			include = include.Or(branch)
		}
	}
	if f.PopularityThreshold > 0 {
		branch := r.db.Where("posts.likes_count + posts.comments_count > ?", f.PopularityThreshold)
		if include == nil {
			include = branch
		} else {
			include = include.Or(branch)
		}
	}

	return include
}

// GetPostsByHashtag 按标签查帖子，最新在前
func (r *postRepoImpl) GetPostsByHashtag(ctx context.Context, hashtagID uint64, excludeOwnerIDs []uint64, limit, offset int) ([]*model.Post, error) {
	sub := r.db.Model(&model.PostHashtag{}).
		Select("post_id").
		Where("hashtag_id = ?", hashtagID)

	q := r.db.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.id IN (?)", sub).
		Where("posts.is_archived = ?", false).
		Where("users.is_active = ?", true)

	if len(excludeOwnerIDs) > 0 {
		q = q.Where("posts.user_id NOT IN ?", excludeOwnerIDs)
	}

	var posts []*model.Post
	err := q.Preload("User").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("media_order ASC")
		}).
		Order("posts.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePostCounts 回写冗余计数列
func (r *postRepoImpl) UpdatePostCounts(ctx context.Context, postID uint64, likes, comments, saves, views int64) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			"likes_count":    likes,
			"comments_count": comments,
			"saves_count":    saves,
			"views_count":    views,
		}).Error
}
