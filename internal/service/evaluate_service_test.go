package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func scorePtr(v float64) *float64 { return &v }

func TestEvaluateScoreRequiresScore(t *testing.T) {
	svc := NewEvaluateService(&fakeEvaluateRepo{}, &fakeOrderRepo{}, &fakeUserPaymentRepo{})
	err := svc.Create(context.Background(), 1, &dto.CreateEvaluateDTO{
		RecordID: 1,
		Type:     model.EvaluateTypeScore,
	})
	assert.ErrorIs(t, err, ErrScoreRequired)
}

func TestEvaluateScoreOutOfRange(t *testing.T) {
	svc := NewEvaluateService(&fakeEvaluateRepo{}, &fakeOrderRepo{}, &fakeUserPaymentRepo{})
	err := svc.Create(context.Background(), 1, &dto.CreateEvaluateDTO{
		RecordID: 1,
		Type:     model.EvaluateTypeScore,
		Score:    scorePtr(5.5),
	})
	assert.ErrorIs(t, err, ErrScoreInvalid)
}

func TestEvaluateScoreOrderMissing(t *testing.T) {
	orderRepo := &fakeOrderRepo{
		getByID: func(ctx context.Context, id uint64) (*model.ServiceOrder, error) {
			return nil, nil
		},
	}
	svc := NewEvaluateService(&fakeEvaluateRepo{}, orderRepo, &fakeUserPaymentRepo{})
	err := svc.Create(context.Background(), 1, &dto.CreateEvaluateDTO{
		RecordID: 1,
		Type:     model.EvaluateTypeScore,
		Score:    scorePtr(4),
	})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestEvaluateScoreIllegalStatus(t *testing.T) {
	// 维修记录还在待处理，不能直接评价
	orderRepo := &fakeOrderRepo{
		getByID: func(ctx context.Context, id uint64) (*model.ServiceOrder, error) {
			return &model.ServiceOrder{ID: id, Type: "C1", Status: model.StatusPending}, nil
		},
	}
	svc := NewEvaluateService(&fakeEvaluateRepo{}, orderRepo, &fakeUserPaymentRepo{})
	err := svc.Create(context.Background(), 1, &dto.CreateEvaluateDTO{
		RecordID: 1,
		Type:     model.EvaluateTypeScore,
		Score:    scorePtr(4),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEvaluateScoreSuccess(t *testing.T) {
	var saved *model.Evaluate
	var savedTarget int8 = -1
	evalRepo := &fakeEvaluateRepo{
		createScore: func(ctx context.Context, eval *model.Evaluate, target int8) error {
			saved = eval
			savedTarget = target
			return nil
		},
	}
	orderRepo := &fakeOrderRepo{
		getByID: func(ctx context.Context, id uint64) (*model.ServiceOrder, error) {
			return &model.ServiceOrder{ID: id, Name: "中秋游园会", Type: "A", Status: model.StatusApproved}, nil
		},
	}
	svc := NewEvaluateService(evalRepo, orderRepo, &fakeUserPaymentRepo{})

	err := svc.Create(context.Background(), 9, &dto.CreateEvaluateDTO{
		RecordID: 3,
		Type:     model.EvaluateTypeScore,
		Score:    scorePtr(5),
		Content:  "组织得很好",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint64(9), saved.UserID)
	assert.Equal(t, uint64(3), saved.RecordID)
	assert.Equal(t, "中秋游园会", saved.Name)
	assert.Equal(t, 5.0, saved.Score)
	assert.Equal(t, model.EvaluateTargetService, savedTarget)
	assert.GreaterOrEqual(t, saved.Weekday, 0)
	assert.LessOrEqual(t, saved.Weekday, 6)
}

func TestEvaluateScorePaymentRecord(t *testing.T) {
	var saved *model.Evaluate
	var savedTarget int8 = -1
	evalRepo := &fakeEvaluateRepo{
		createScore: func(ctx context.Context, eval *model.Evaluate, target int8) error {
			saved = eval
			savedTarget = target
			return nil
		},
	}
	// 该主键只存在于缴费记录，服务记录侧查不到
	userPaymentRepo := &fakeUserPaymentRepo{
		getByID: func(ctx context.Context, id uint64) (*model.UserPayment, error) {
			return &model.UserPayment{ID: id, UserID: 9, Name: "8月物业费", Status: model.StatusCompleted}, nil
		},
	}
	orderRepo := &fakeOrderRepo{
		getByID: func(ctx context.Context, id uint64) (*model.ServiceOrder, error) {
			return nil, nil
		},
	}
	svc := NewEvaluateService(evalRepo, orderRepo, userPaymentRepo)

	// 不带目标标识时按服务记录处理，查不到
	err := svc.Create(context.Background(), 9, &dto.CreateEvaluateDTO{
		RecordID: 7,
		Type:     model.EvaluateTypeScore,
		Score:    scorePtr(4),
	})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// 指明缴费目标后走缴费记录分支
	err = svc.Create(context.Background(), 9, &dto.CreateEvaluateDTO{
		RecordID: 7,
		Type:     model.EvaluateTypeScore,
		Target:   model.EvaluateTargetPayment,
		Score:    scorePtr(4),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "8月物业费", saved.Name)
	assert.Equal(t, model.EvaluateTargetPayment, savedTarget)
}

func TestEvaluateScorePaymentIllegalStatus(t *testing.T) {
	userPaymentRepo := &fakeUserPaymentRepo{
		getByID: func(ctx context.Context, id uint64) (*model.UserPayment, error) {
			return &model.UserPayment{ID: id, Status: model.StatusPending}, nil
		},
	}
	svc := NewEvaluateService(&fakeEvaluateRepo{}, &fakeOrderRepo{}, userPaymentRepo)

	err := svc.Create(context.Background(), 9, &dto.CreateEvaluateDTO{
		RecordID: 7,
		Type:     model.EvaluateTypeScore,
		Target:   model.EvaluateTargetPayment,
		Score:    scorePtr(4),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestEvaluateFeedback(t *testing.T) {
	var gotServiceType string
	var gotTarget int8 = -1
	evalRepo := &fakeEvaluateRepo{
		createFeedback: func(ctx context.Context, eval *model.Evaluate, serviceType string, target int8) error {
			gotServiceType = serviceType
			gotTarget = target
			return nil
		},
	}
	svc := NewEvaluateService(evalRepo, &fakeOrderRepo{}, &fakeUserPaymentRepo{})

	err := svc.Create(context.Background(), 2, &dto.CreateEvaluateDTO{
		RecordID:    5,
		Type:        model.EvaluateTypeFeedback,
		Content:     "水管还在漏",
		ServiceType: "C1",
	})
	require.NoError(t, err)
	assert.Equal(t, "C1", gotServiceType)
	assert.Equal(t, model.EvaluateTargetService, gotTarget)
}

func TestEvaluateFeedbackPaymentTarget(t *testing.T) {
	var gotTarget int8 = -1
	evalRepo := &fakeEvaluateRepo{
		createFeedback: func(ctx context.Context, eval *model.Evaluate, serviceType string, target int8) error {
			gotTarget = target
			return nil
		},
	}
	svc := NewEvaluateService(evalRepo, &fakeOrderRepo{}, &fakeUserPaymentRepo{})

	err := svc.Create(context.Background(), 2, &dto.CreateEvaluateDTO{
		RecordID: 5,
		Type:     model.EvaluateTypeFeedback,
		Target:   model.EvaluateTargetPayment,
		Content:  "金额算错了",
	})
	require.NoError(t, err)
	assert.Equal(t, model.EvaluateTargetPayment, gotTarget)
}

func TestEvaluateFeedbackOrderMissing(t *testing.T) {
	evalRepo := &fakeEvaluateRepo{
		createFeedback: func(ctx context.Context, eval *model.Evaluate, serviceType string, target int8) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := NewEvaluateService(evalRepo, &fakeOrderRepo{}, &fakeUserPaymentRepo{})

	err := svc.Create(context.Background(), 2, &dto.CreateEvaluateDTO{
		RecordID: 5,
		Type:     model.EvaluateTypeFeedback,
	})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
