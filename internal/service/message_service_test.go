package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMessageRepo struct {
	repository.MessageRepo
	create      func(ctx context.Context, msg *model.Message) error
	createReply func(ctx context.Context, msg *model.Message, eval *model.Evaluate) error
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	return f.create(ctx, msg)
}

func (f *fakeMessageRepo) CreateFeedbackReply(ctx context.Context, msg *model.Message, eval *model.Evaluate) error {
	return f.createReply(ctx, msg, eval)
}

func TestMessageSend(t *testing.T) {
	var sent *model.Message
	messageRepo := &fakeMessageRepo{
		create: func(ctx context.Context, msg *model.Message) error {
			sent = msg
			return nil
		},
	}
	svc := NewMessageService(messageRepo, &fakeEvaluateRepo{}, &fakeUserRepo{})

	err := svc.Send(context.Background(), 2, &dto.MessageDTO{
		RecipientID:   "resident01",
		RecipientName: "张三",
		Content:       "您预约的维修已安排",
	})
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, uint64(2), sent.UserID)
	assert.Equal(t, "resident01", sent.RecipientID)
}

func TestReplyFeedback(t *testing.T) {
	var replied *model.Message
	messageRepo := &fakeMessageRepo{
		createReply: func(ctx context.Context, msg *model.Message, eval *model.Evaluate) error {
			replied = msg
			return nil
		},
	}
	evaluateRepo := &fakeEvaluateRepo{
		getByID: func(ctx context.Context, id uint64) (*model.Evaluate, error) {
			return &model.Evaluate{ID: id, UserID: 5, Status: model.EvaluateStatusOpen}, nil
		},
	}
	userRepo := &fakeUserRepo{
		getByID: func(ctx context.Context, id uint64) (*model.User, error) {
			return &model.User{ID: id, Username: "resident05", Name: "王五"}, nil
		},
	}
	svc := NewMessageService(messageRepo, evaluateRepo, userRepo)

	err := svc.ReplyFeedback(context.Background(), 1, &dto.FeedbackReplyDTO{
		EvaluateID: 8,
		Content:    "已安排师傅复查",
	})
	require.NoError(t, err)
	require.NotNil(t, replied)
	assert.Equal(t, "resident05", replied.RecipientID)
	assert.Equal(t, "王五", replied.RecipientName)
}

func TestReplyFeedbackGuards(t *testing.T) {
	t.Run("反馈不存在", func(t *testing.T) {
		evaluateRepo := &fakeEvaluateRepo{
			getByID: func(ctx context.Context, id uint64) (*model.Evaluate, error) {
				return nil, nil
			},
		}
		svc := NewMessageService(&fakeMessageRepo{}, evaluateRepo, &fakeUserRepo{})
		err := svc.ReplyFeedback(context.Background(), 1, &dto.FeedbackReplyDTO{EvaluateID: 8, Content: "x"})
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("反馈已受理", func(t *testing.T) {
		evaluateRepo := &fakeEvaluateRepo{
			getByID: func(ctx context.Context, id uint64) (*model.Evaluate, error) {
				return &model.Evaluate{ID: id, Status: model.EvaluateStatusHandled}, nil
			},
		}
		svc := NewMessageService(&fakeMessageRepo{}, evaluateRepo, &fakeUserRepo{})
		err := svc.ReplyFeedback(context.Background(), 1, &dto.FeedbackReplyDTO{EvaluateID: 8, Content: "x"})
		assert.ErrorIs(t, err, ErrFeedbackHandled)
	})

	t.Run("前台记录已丢失", func(t *testing.T) {
		messageRepo := &fakeMessageRepo{
			createReply: func(ctx context.Context, msg *model.Message, eval *model.Evaluate) error {
				return gorm.ErrRecordNotFound
			},
		}
		evaluateRepo := &fakeEvaluateRepo{
			getByID: func(ctx context.Context, id uint64) (*model.Evaluate, error) {
				return &model.Evaluate{ID: id, UserID: 5, Status: model.EvaluateStatusOpen}, nil
			},
		}
		userRepo := &fakeUserRepo{
			getByID: func(ctx context.Context, id uint64) (*model.User, error) {
				return &model.User{ID: id, Username: "resident05"}, nil
			},
		}
		svc := NewMessageService(messageRepo, evaluateRepo, userRepo)
		err := svc.ReplyFeedback(context.Background(), 1, &dto.FeedbackReplyDTO{EvaluateID: 8, Content: "x"})
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}
