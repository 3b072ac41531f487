package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// RepairRecord 维修申请的展示行
type RepairRecord struct {
	UserName string       `gorm:"column:user_name" json:"user_name"`
	Name     string       `gorm:"column:name" json:"name"`
	Type     string       `gorm:"column:type" json:"type"`
	Status   model.Status `gorm:"column:status" json:"status"`
}

type RepairsRepo interface {
	CreateApplyWithOrder(ctx context.Context, apply *model.RepairsApply) error
	GetApplyByID(ctx context.Context, id uint64) (*model.RepairsApply, error)
	ListApplies(ctx context.Context, limit, offset int) ([]*model.RepairsApply, int64, error)
	ListAppliesSince(ctx context.Context, since time.Time) ([]*RepairRecord, error)
	UpdateWithWorker(ctx context.Context, apply *model.RepairsApply, newStatus model.Status, worker *model.User) error
	DeleteApply(ctx context.Context, id uint64) error
}

type RepairsRepoImpl struct {
	db *gorm.DB
}

func NewRepairsRepo(db *gorm.DB) RepairsRepo {
	return &RepairsRepoImpl{db: db}
}

// CreateApplyWithOrder 创建维修申请并生成前台服务记录
func (s *RepairsRepoImpl) CreateApplyWithOrder(ctx context.Context, apply *model.RepairsApply) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(apply).Error; err != nil {
			return err
		}
		order := &model.ServiceOrder{
			UserID:  apply.UserID,
			OrderID: apply.ID,
			Name:    apply.Name,
			Type:    apply.Type,
		}
		return tx.Create(order).Error
	})
}

func (s *RepairsRepoImpl) GetApplyByID(ctx context.Context, id uint64) (*model.RepairsApply, error) {
	var apply model.RepairsApply
	result := s.db.WithContext(ctx).First(&apply, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &apply, nil
}

func (s *RepairsRepoImpl) ListApplies(ctx context.Context, limit, offset int) ([]*model.RepairsApply, int64, error) {
	var applies []*model.RepairsApply
	var total int64

	query := s.db.WithContext(ctx).Model(&model.RepairsApply{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&applies)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return applies, total, nil
}

func (s *RepairsRepoImpl) ListAppliesSince(ctx context.Context, since time.Time) ([]*RepairRecord, error) {
	var rows []*RepairRecord
	result := s.db.WithContext(ctx).
		Model(&model.RepairsApply{}).
		Select("user.name AS user_name, repairs_apply.name AS name, repairs_apply.type AS type, repairs_apply.status AS status").
		Joins("JOIN user ON user.id = repairs_apply.user_id").
		Where("repairs_apply.created_at >= ?", since).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// UpdateWithWorker 推进维修工单：绑定或交接维修工、更新状态、同步前台记录。
// worker 为 nil 表示本次不换人，只推进状态。
func (s *RepairsRepoImpl) UpdateWithWorker(ctx context.Context, apply *model.RepairsApply, newStatus model.Status, worker *model.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{"status": newStatus}

		if worker != nil {
			// 旧维修工先释放，再占用新维修工
			if apply.WorkerID != 0 && apply.WorkerID != worker.ID {
				if err := tx.Model(&model.User{}).
					Where("id = ?", apply.WorkerID).
					Update("task_id", 0).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&model.User{}).
				Where("id = ?", worker.ID).
				Update("task_id", apply.ID).Error; err != nil {
				return err
			}
			updates["worker_id"] = worker.ID
			updates["worker_name"] = worker.Name
		}

		// 完结时释放当前维修工
		if newStatus == model.StatusCompleted && worker == nil && apply.WorkerID != 0 {
			if err := tx.Model(&model.User{}).
				Where("id = ?", apply.WorkerID).
				Update("task_id", 0).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.RepairsApply{}).
			Where("id = ?", apply.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		result := tx.Model(&model.ServiceOrder{}).
			Where("order_id = ? AND type <> ?", apply.ID, model.ServiceTypeActivity).
			Update("status", newStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *RepairsRepoImpl) DeleteApply(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.RepairsApply{}, id).Error
}
