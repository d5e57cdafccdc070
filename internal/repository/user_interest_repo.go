package repository

import (
	"Lumen/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserInterestRepo interface {
	GetTopInterests(ctx context.Context, userID uint64, interestType string, n int) ([]*model.UserInterest, error)
	UpsertInterest(ctx context.Context, interest *model.UserInterest) error
}

type userInterestRepoImpl struct {
	db *gorm.DB
}

func NewUserInterestRepo(db *gorm.DB) UserInterestRepo {
	return &userInterestRepoImpl{db: db}
}

// GetTopInterests 按分数降序取用户的前 N 个兴趣
func (r *userInterestRepoImpl) GetTopInterests(ctx context.Context, userID uint64, interestType string, n int) ([]*model.UserInterest, error) {
	var interests []*model.UserInterest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND interest_type = ?", userID, interestType).
		Order("score DESC").
		Limit(n).
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// UpsertInterest 按复合主键覆盖写入分数与时间戳，单键原子，last-write-wins
func (r *userInterestRepoImpl) UpsertInterest(ctx context.Context, interest *model.UserInterest) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "interest_type"},
			{Name: "interest_value"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(interest).Error
}
