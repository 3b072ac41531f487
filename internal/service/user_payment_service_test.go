package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPaymentSeedsMonthlyFees(t *testing.T) {
	noticeRepo := &fakeNoticeRepo{
		listFeeNotices: func(ctx context.Context, year int, month time.Month) ([]*model.Notice, error) {
			return []*model.Notice{
				{Title: "8月份水费", Money: 30},
				{Title: "8月份燃气费", Money: 55},
				{Title: "8月份物业费", Money: 120},
			}, nil
		},
	}
	var seeded []*model.UserPayment
	userPaymentRepo := &fakeUserPaymentRepo{
		existsByName: func(ctx context.Context, userID uint64, name string) (bool, error) {
			// 水费已有账单，不重复补
			return name == "8月份水费", nil
		},
		createBatch: func(ctx context.Context, ups []*model.UserPayment) error {
			seeded = ups
			return nil
		},
		listByUser: func(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserPayment, int64, error) {
			return nil, 0, nil
		},
	}
	svc := NewUserPaymentService(userPaymentRepo, noticeRepo)

	_, err := svc.ListByUser(context.Background(), 3, &dto.PageDTO{})
	require.NoError(t, err)

	require.Len(t, seeded, 2)
	assert.Equal(t, "8月份燃气费", seeded[0].Name)
	assert.Equal(t, model.PaymentTypeGas, seeded[0].Type)
	assert.Equal(t, model.StatusPending, seeded[0].Status)
	assert.Equal(t, "8月份物业费", seeded[1].Name)
	assert.Equal(t, model.PaymentTypeProperty, seeded[1].Type)
}

func TestUserPaymentExists(t *testing.T) {
	userPaymentRepo := &fakeUserPaymentRepo{
		existsByName: func(ctx context.Context, userID uint64, name string) (bool, error) {
			return userID == 3 && name == "8月水费", nil
		},
	}
	svc := NewUserPaymentService(userPaymentRepo, &fakeNoticeRepo{})

	exists, err := svc.Exists(context.Background(), 3, "8月水费")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(context.Background(), 3, "8月电费")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Exists(context.Background(), 3, "")
	assert.ErrorIs(t, err, ErrParamInvalid)
}
