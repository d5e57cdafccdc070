package model

import (
	"time"
)

type Post struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Caption       string    `gorm:"type:varchar(2200)" json:"caption"`
	Location      *string   `gorm:"type:varchar(255)" json:"location"`
	LikesCount    int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	SavesCount    int       `gorm:"not null;default:0" json:"saves_count"`
	ViewsCount    int       `gorm:"not null;default:0" json:"views_count"`
	IsArchived    bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_archived"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 关联关系
	User  User        `gorm:"foreignKey:UserID;references:ID"`
	Media []PostMedia `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
