package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// TypeCount 按缴费类型分组的数量统计
type TypeCount struct {
	Type  int8  `gorm:"column:type" json:"type"`
	Count int64 `gorm:"column:count" json:"count"`
}

type PaymentRepo interface {
	CreatePurchase(ctx context.Context, payment *model.Payment, unit any, userPayment *model.UserPayment) error
	CreateFee(ctx context.Context, payment *model.Payment) error
	GetByID(ctx context.Context, id uint64) (*model.Payment, error)
	List(ctx context.Context, limit, offset int) ([]*model.Payment, int64, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.Payment, error)
	GroupCountByType(ctx context.Context) ([]*TypeCount, error)
	Delete(ctx context.Context, id uint64) error
}

type PaymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepo {
	return &PaymentRepoImpl{db: db}
}

// CreatePurchase 保证金类缴费单：后台单、车位/房屋使用记录、
// 前台镜像三条写入同事务。unit 为 *model.Parking 或 *model.House。
func (s *PaymentRepoImpl) CreatePurchase(ctx context.Context, payment *model.Payment, unit any, userPayment *model.UserPayment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		switch u := unit.(type) {
		case *model.Parking:
			u.PaymentID = payment.ID
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		case *model.House:
			u.PaymentID = payment.ID
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		userPayment.OrderID = payment.ID
		return tx.Create(userPayment).Error
	})
}

// CreateFee 日常费用缴费单：同名费用公告参与数 +1，
// 用户的待缴记录标记已完成并回填后台单号。
func (s *PaymentRepoImpl) CreateFee(ctx context.Context, payment *model.Payment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		result := tx.Model(&model.Notice{}).
			Where("title = ? AND type = ?", payment.Name, model.NoticeTypeFee).
			UpdateColumn("join", gorm.Expr("`join` + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		result = tx.Model(&model.UserPayment{}).
			Where("user_id = ? AND name = ?", payment.UserID, payment.Name).
			Updates(map[string]any{"status": model.StatusCompleted, "order_id": payment.ID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *PaymentRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Payment, error) {
	var payment model.Payment
	result := s.db.WithContext(ctx).First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &payment, nil
}

func (s *PaymentRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.Payment, int64, error) {
	var payments []*model.Payment
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Payment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&payments)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return payments, total, nil
}

func (s *PaymentRepoImpl) ListSince(ctx context.Context, since time.Time) ([]*model.Payment, error) {
	var payments []*model.Payment
	result := s.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}
	return payments, nil
}

func (s *PaymentRepoImpl) GroupCountByType(ctx context.Context) ([]*TypeCount, error) {
	var counts []*TypeCount
	result := s.db.WithContext(ctx).Model(&model.Payment{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	return counts, nil
}

func (s *PaymentRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Payment{}, id).Error
}
