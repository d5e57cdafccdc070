package model

import (
	"time"
)

type User struct {
	ID         uint64  `gorm:"primaryKey"`
	Username   string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	FullName   *string `gorm:"type:varchar(100)"`
	AvatarURL  *string `gorm:"type:varchar(512)"`
	IsVerified bool    `gorm:"type:tinyint(1);not null;default:0"`
	IsPrivate  bool    `gorm:"type:tinyint(1);not null;default:0"`
	IsActive   bool    `gorm:"type:tinyint(1);not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
