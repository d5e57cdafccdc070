package model

import "time"

type Hashtag struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex:idx_hashtag_name"` // 统一存小写
	PostCount int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (Hashtag) TableName() string {
	return "hashtags"
}
