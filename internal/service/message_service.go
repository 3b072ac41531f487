package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type MessageService interface {
	Send(ctx context.Context, senderID uint64, msgDTO *dto.MessageDTO) error
	ReplyFeedback(ctx context.Context, senderID uint64, replyDTO *dto.FeedbackReplyDTO) error
	ListByRecipient(ctx context.Context, recipientID string, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	Delete(ctx context.Context, id uint64) error
}

type MessageServiceImpl struct {
	messageRepo  repository.MessageRepo
	evaluateRepo repository.EvaluateRepo
	userRepo     repository.UserRepo
}

func NewMessageService(messageRepo repository.MessageRepo, evaluateRepo repository.EvaluateRepo, userRepo repository.UserRepo) MessageService {
	return &MessageServiceImpl{
		messageRepo:  messageRepo,
		evaluateRepo: evaluateRepo,
		userRepo:     userRepo,
	}
}

func (s *MessageServiceImpl) Send(ctx context.Context, senderID uint64, msgDTO *dto.MessageDTO) error {
	msg := &model.Message{
		UserID:        senderID,
		RecipientID:   msgDTO.RecipientID,
		RecipientName: msgDTO.RecipientName,
		Content:       msgDTO.Content,
	}
	return s.messageRepo.Create(ctx, msg)
}

// ReplyFeedback 管理员回复反馈：发消息给反馈人，反馈标记已受理，
// 对应前台记录从反馈中拉回已完成
func (s *MessageServiceImpl) ReplyFeedback(ctx context.Context, senderID uint64, replyDTO *dto.FeedbackReplyDTO) error {
	eval, err := s.evaluateRepo.GetByID(ctx, replyDTO.EvaluateID)
	if err != nil {
		return err
	}
	if eval == nil {
		return ErrRecordNotFound
	}
	if eval.Status == model.EvaluateStatusHandled {
		return ErrFeedbackHandled
	}

	msg := &model.Message{
		UserID:  senderID,
		Content: replyDTO.Content,
	}
	if user, err := s.userRepo.GetUserByID(ctx, eval.UserID); err == nil && user != nil {
		msg.RecipientID = user.Username
		msg.RecipientName = user.Name
	}

	err = s.messageRepo.CreateFeedbackReply(ctx, msg, eval)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func (s *MessageServiceImpl) ListByRecipient(ctx context.Context, recipientID string, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	msgs, total, err := s.messageRepo.ListByRecipient(ctx, recipientID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: msgs}, nil
}

func (s *MessageServiceImpl) Delete(ctx context.Context, id uint64) error {
	return s.messageRepo.Delete(ctx, id)
}
