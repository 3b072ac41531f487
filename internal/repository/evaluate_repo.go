package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type EvaluateRepo interface {
	CreateScore(ctx context.Context, eval *model.Evaluate, target int8) error
	CreateFeedback(ctx context.Context, eval *model.Evaluate, serviceType string, target int8) error
	GetByID(ctx context.Context, id uint64) (*model.Evaluate, error)
	ListByType(ctx context.Context, evalType int8, limit, offset int) ([]*model.Evaluate, int64, error)
	ListScoresSince(ctx context.Context, since time.Time) ([]*model.Evaluate, error)
}

type EvaluateRepoImpl struct {
	db *gorm.DB
}

func NewEvaluateRepo(db *gorm.DB) EvaluateRepo {
	return &EvaluateRepoImpl{db: db}
}

// CreateScore 写入评分并把目标记录置为已评价，
// target 区分前台服务记录和缴费记录
func (s *EvaluateRepoImpl) CreateScore(ctx context.Context, eval *model.Evaluate, target int8) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(eval).Error; err != nil {
			return err
		}

		query := tx.Model(&model.ServiceOrder{})
		if target == model.EvaluateTargetPayment {
			query = tx.Model(&model.UserPayment{})
		}
		result := query.Where("id = ?", eval.RecordID).
			Updates(map[string]any{"status": model.StatusEvaluated, "score": eval.Score})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CreateFeedback 写入反馈并把目标记录置为反馈中，记录名称
// 回填到反馈行。服务反馈的 RecordID 存后台工单号，缴费反馈
// 的 RecordID 存缴费记录主键。
func (s *EvaluateRepoImpl) CreateFeedback(ctx context.Context, eval *model.Evaluate, serviceType string, target int8) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if target == model.EvaluateTargetPayment {
			var up model.UserPayment
			if err := tx.First(&up, eval.RecordID).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.UserPayment{}).
				Where("id = ?", up.ID).
				Update("status", model.StatusInFeedback).Error; err != nil {
				return err
			}
			eval.Name = up.Name
			return tx.Create(eval).Error
		}

		query := tx.Where("order_id = ?", eval.RecordID)
		if serviceType == model.ServiceTypeActivity {
			query = query.Where("type = ?", model.ServiceTypeActivity)
		} else {
			query = query.Where("type <> ?", model.ServiceTypeActivity)
		}

		var order model.ServiceOrder
		if err := query.First(&order).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.ServiceOrder{}).
			Where("id = ?", order.ID).
			Update("status", model.StatusInFeedback).Error; err != nil {
			return err
		}

		eval.Name = order.Name
		return tx.Create(eval).Error
	})
}

func (s *EvaluateRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Evaluate, error) {
	var eval model.Evaluate
	result := s.db.WithContext(ctx).First(&eval, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &eval, nil
}

func (s *EvaluateRepoImpl) ListByType(ctx context.Context, evalType int8, limit, offset int) ([]*model.Evaluate, int64, error) {
	var evals []*model.Evaluate
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Evaluate{}).Where("type = ?", evalType)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&evals)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return evals, total, nil
}

// ListScoresSince 拉取统计窗口内的全部评分行
func (s *EvaluateRepoImpl) ListScoresSince(ctx context.Context, since time.Time) ([]*model.Evaluate, error) {
	var evals []*model.Evaluate
	result := s.db.WithContext(ctx).
		Where("type = ? AND created_at >= ?", model.EvaluateTypeScore, since).
		Find(&evals)
	if result.Error != nil {
		return nil, result.Error
	}
	return evals, nil
}
