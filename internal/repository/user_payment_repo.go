package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserPaymentRepo interface {
	Create(ctx context.Context, up *model.UserPayment) error
	CreateBatch(ctx context.Context, ups []*model.UserPayment) error
	GetByID(ctx context.Context, id uint64) (*model.UserPayment, error)
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserPayment, int64, error)
	ExistsByUserAndName(ctx context.Context, userID uint64, name string) (bool, error)
	GetByUserAndName(ctx context.Context, userID uint64, name string) (*model.UserPayment, error)
	DeleteWithFeedback(ctx context.Context, up *model.UserPayment) error
}

type UserPaymentRepoImpl struct {
	db *gorm.DB
}

func NewUserPaymentRepo(db *gorm.DB) UserPaymentRepo {
	return &UserPaymentRepoImpl{db: db}
}

func (s *UserPaymentRepoImpl) Create(ctx context.Context, up *model.UserPayment) error {
	return s.db.WithContext(ctx).Create(up).Error
}

// CreateBatch 月度费用账单批量落库
func (s *UserPaymentRepoImpl) CreateBatch(ctx context.Context, ups []*model.UserPayment) error {
	if len(ups) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&ups).Error
}

func (s *UserPaymentRepoImpl) GetByID(ctx context.Context, id uint64) (*model.UserPayment, error) {
	var up model.UserPayment
	result := s.db.WithContext(ctx).First(&up, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &up, nil
}

func (s *UserPaymentRepoImpl) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserPayment, int64, error) {
	var ups []*model.UserPayment
	var total int64

	query := s.db.WithContext(ctx).Model(&model.UserPayment{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&ups)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return ups, total, nil
}

func (s *UserPaymentRepoImpl) ExistsByUserAndName(ctx context.Context, userID uint64, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserPayment{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *UserPaymentRepoImpl) GetByUserAndName(ctx context.Context, userID uint64, name string) (*model.UserPayment, error) {
	var up model.UserPayment
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&up)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &up, nil
}

// DeleteWithFeedback 删除缴费记录，反馈中的记录连带清掉同名评价
func (s *UserPaymentRepoImpl) DeleteWithFeedback(ctx context.Context, up *model.UserPayment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.UserPayment{}, up.ID).Error; err != nil {
			return err
		}
		if up.Status == model.StatusInFeedback {
			if err := tx.Where("user_id = ? AND name = ?", up.UserID, up.Name).
				Delete(&model.Evaluate{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
