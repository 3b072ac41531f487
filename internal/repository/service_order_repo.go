package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ServiceOrderRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.ServiceOrder, error)
	ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.ServiceOrder, int64, error)
	ExistsByOrderAndKind(ctx context.Context, orderID uint64, serviceType string) (bool, error)
	DeleteWithCounterpart(ctx context.Context, order *model.ServiceOrder) error
}

type ServiceOrderRepoImpl struct {
	db *gorm.DB
}

func NewServiceOrderRepo(db *gorm.DB) ServiceOrderRepo {
	return &ServiceOrderRepoImpl{db: db}
}

func (s *ServiceOrderRepoImpl) GetByID(ctx context.Context, id uint64) (*model.ServiceOrder, error) {
	var order model.ServiceOrder
	result := s.db.WithContext(ctx).First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &order, nil
}

func (s *ServiceOrderRepoImpl) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.ServiceOrder, int64, error) {
	var orders []*model.ServiceOrder
	var total int64

	query := s.db.WithContext(ctx).Model(&model.ServiceOrder{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return orders, total, nil
}

// ExistsByOrderAndKind 按后台工单号和业务线查前台记录是否存在，
// 供反馈提交前的预检
func (s *ServiceOrderRepoImpl) ExistsByOrderAndKind(ctx context.Context, orderID uint64, serviceType string) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.ServiceOrder{}).Where("order_id = ?", orderID)
	if serviceType == model.ServiceTypeActivity {
		query = query.Where("type = ?", model.ServiceTypeActivity)
	} else {
		query = query.Where("type <> ?", model.ServiceTypeActivity)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteWithCounterpart 删除前台服务记录并做级联清理：
// 未评价的记录连带删除后台对应申请（后台已删则跳过），
// 处于反馈中的记录还要清掉该用户同名的评价记录。
func (s *ServiceOrderRepoImpl) DeleteWithCounterpart(ctx context.Context, order *model.ServiceOrder) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ServiceOrder{}, order.ID).Error; err != nil {
			return err
		}

		if order.Status != model.StatusEvaluated {
			var err error
			if order.Type == model.ServiceTypeActivity {
				err = tx.Delete(&model.ActivityApply{}, order.OrderID).Error
			} else {
				err = tx.Delete(&model.RepairsApply{}, order.OrderID).Error
			}
			if err != nil {
				return err
			}
		}

		if order.Status == model.StatusInFeedback {
			if err := tx.Where("user_id = ? AND name = ?", order.UserID, order.Name).
				Delete(&model.Evaluate{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
