package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ApplyRecord 活动报名记录的展示行
type ApplyRecord struct {
	UserName string       `gorm:"column:user_name" json:"user_name"`
	Title    string       `gorm:"column:title" json:"title"`
	Status   model.Status `gorm:"column:status" json:"status"`
}

type ActivityRepo interface {
	CreateApplyWithOrder(ctx context.Context, apply *model.ActivityApply, taskName string) error
	GetApplyByID(ctx context.Context, id uint64) (*model.ActivityApply, error)
	ExistsByUserAndNotice(ctx context.Context, userID, noticeID uint64) (bool, error)
	ListApplies(ctx context.Context, limit, offset int) ([]*model.ActivityApply, int64, error)
	ListAppliesSince(ctx context.Context, since time.Time) ([]*ApplyRecord, error)
	Review(ctx context.Context, apply *model.ActivityApply, newStatus model.Status) error
	DeleteApply(ctx context.Context, id uint64) error
}

type ActivityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &ActivityRepoImpl{db: db}
}

// CreateApplyWithOrder 创建活动报名并生成前台服务记录，两条写入同事务
func (s *ActivityRepoImpl) CreateApplyWithOrder(ctx context.Context, apply *model.ActivityApply, taskName string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(apply).Error; err != nil {
			return err
		}
		order := &model.ServiceOrder{
			UserID:  apply.UserID,
			OrderID: apply.ID,
			Name:    taskName,
			Type:    model.ServiceTypeActivity,
		}
		return tx.Create(order).Error
	})
}

func (s *ActivityRepoImpl) GetApplyByID(ctx context.Context, id uint64) (*model.ActivityApply, error) {
	var apply model.ActivityApply
	result := s.db.WithContext(ctx).First(&apply, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &apply, nil
}

func (s *ActivityRepoImpl) ExistsByUserAndNotice(ctx context.Context, userID, noticeID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ActivityApply{}).
		Where("user_id = ? AND publicity_id = ?", userID, noticeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ActivityRepoImpl) ListApplies(ctx context.Context, limit, offset int) ([]*model.ActivityApply, int64, error) {
	var applies []*model.ActivityApply
	var total int64

	query := s.db.WithContext(ctx).Model(&model.ActivityApply{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&applies)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return applies, total, nil
}

// ListAppliesSince 关联用户姓名和活动标题，供近 7 天记录展示
func (s *ActivityRepoImpl) ListAppliesSince(ctx context.Context, since time.Time) ([]*ApplyRecord, error) {
	var rows []*ApplyRecord
	result := s.db.WithContext(ctx).
		Model(&model.ActivityApply{}).
		Select("user.name AS user_name, publicity.title AS title, activity_apply.status AS status").
		Joins("JOIN user ON user.id = activity_apply.user_id").
		Joins("JOIN publicity ON publicity.id = activity_apply.publicity_id").
		Where("activity_apply.created_at >= ?", since).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// Review 审批活动报名：更新状态，同意时活动参与人数 +1，
// 并把状态同步到共享 order_id 的前台服务记录
func (s *ActivityRepoImpl) Review(ctx context.Context, apply *model.ActivityApply, newStatus model.Status) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ActivityApply{}).
			Where("id = ?", apply.ID).
			Update("status", newStatus).Error; err != nil {
			return err
		}

		if newStatus == model.StatusApproved {
			if err := tx.Model(&model.Notice{}).
				Where("id = ?", apply.NoticeID).
				UpdateColumn("join", gorm.Expr("`join` + 1")).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&model.ServiceOrder{}).
			Where("order_id = ? AND type = ?", apply.ID, model.ServiceTypeActivity).
			Update("status", newStatus)
		if result.Error != nil {
			return result.Error
		}
		// 状态同步找不到前台记录属于数据不一致，回滚整个审批
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *ActivityRepoImpl) DeleteApply(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.ActivityApply{}, id).Error
}
