package repository

import (
	"StarEstate/internal/model"
	"context"

	"gorm.io/gorm"
)

type MessageRepo interface {
	Create(ctx context.Context, msg *model.Message) error
	CreateFeedbackReply(ctx context.Context, msg *model.Message, eval *model.Evaluate) error
	ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*model.Message, int64, error)
	Delete(ctx context.Context, id uint64) error
}

type MessageRepoImpl struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &MessageRepoImpl{db: db}
}

func (s *MessageRepoImpl) Create(ctx context.Context, msg *model.Message) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

// CreateFeedbackReply 回复反馈：发送消息、反馈标记已受理、
// 对应的前台记录（服务或缴费）从反馈中拉回已完成。
func (s *MessageRepoImpl) CreateFeedbackReply(ctx context.Context, msg *model.Message, eval *model.Evaluate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Evaluate{}).
			Where("id = ?", eval.ID).
			Update("status", model.EvaluateStatusHandled).Error; err != nil {
			return err
		}

		result := tx.Model(&model.ServiceOrder{}).
			Where("order_id = ? AND name = ?", eval.RecordID, eval.Name).
			Update("status", model.StatusCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		result = tx.Model(&model.UserPayment{}).
			Where("order_id = ? AND name = ?", eval.RecordID, eval.Name).
			Update("status", model.StatusCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *MessageRepoImpl) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*model.Message, int64, error) {
	var msgs []*model.Message
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Message{}).Where("recipient_id = ?", recipientID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&msgs)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return msgs, total, nil
}

func (s *MessageRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Message{}, id).Error
}
