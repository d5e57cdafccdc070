package model

import "time"

// UserBlock 拉黑是单向记录，但在候选过滤时双向生效
type UserBlock struct {
	BlockerID uint64    `gorm:"primaryKey" json:"blockerId"`
	BlockedID uint64    `gorm:"primaryKey;index:idx_blocked_id" json:"blockedId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (UserBlock) TableName() string {
	return "blocks"
}
