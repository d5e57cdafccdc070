package model

import (
	"time"
)

// PostLike 复合主键保证同一 (user, post) 只能存在一条点赞记录，
// 并发重复点赞由存储层唯一约束兜底
type PostLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
