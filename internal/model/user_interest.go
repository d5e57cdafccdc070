package model

import (
	"time"
)

// UserInterest 用户兴趣画像，(user_id, interest_type, interest_value) 唯一，
// 刷新时整行覆盖（last-write-wins）
type UserInterest struct {
	UserID        uint64    `gorm:"primaryKey" json:"user_id"`
	InterestType  string    `gorm:"primaryKey;type:varchar(32)" json:"interest_type"`
	InterestValue string    `gorm:"primaryKey;type:varchar(100)" json:"interest_value"`
	Score         int       `gorm:"not null;default:0" json:"score"` // 0-100
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserInterest) TableName() string {
	return "user_interests"
}
