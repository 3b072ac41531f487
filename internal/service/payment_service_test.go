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

func TestPaymentPurchaseParking(t *testing.T) {
	var gotPayment *model.Payment
	var gotUnit any
	var gotMirror *model.UserPayment

	paymentRepo := &fakePaymentRepo{
		createPurchase: func(ctx context.Context, payment *model.Payment, unit any, userPayment *model.UserPayment) error {
			gotPayment, gotUnit, gotMirror = payment, unit, userPayment
			return nil
		},
	}
	parkingRepo := &fakeParkingRepo{
		getByLot: func(ctx context.Context, lotID string) (*model.Parking, error) {
			return nil, nil
		},
	}
	svc := NewPaymentService(paymentRepo, &fakeUserPaymentRepo{}, parkingRepo, &fakeHouseRepo{})

	err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
		Name:  "B2017车位保证金",
		Type:  model.PaymentTypeParking,
		Money: 3000,
	})
	require.NoError(t, err)

	require.NotNil(t, gotPayment)
	assert.Equal(t, model.StatusCompleted, gotPayment.Status)

	parking, ok := gotUnit.(*model.Parking)
	require.True(t, ok)
	assert.Equal(t, "B2017", parking.ParkingLotID)
	assert.Equal(t, "B", parking.AreaCode)
	assert.Equal(t, uint64(6), parking.UserID)

	require.NotNil(t, gotMirror)
	assert.Equal(t, "B2017车位保证金", gotMirror.Name)
	assert.Equal(t, 3000.0, gotMirror.Money)
	assert.Equal(t, model.StatusCompleted, gotMirror.Status)
}

func TestPaymentPurchaseHouse(t *testing.T) {
	var gotUnit any
	paymentRepo := &fakePaymentRepo{
		createPurchase: func(ctx context.Context, payment *model.Payment, unit any, userPayment *model.UserPayment) error {
			gotUnit = unit
			return nil
		},
	}
	houseRepo := &fakeHouseRepo{
		getByHouseID: func(ctx context.Context, houseID string) (*model.House, error) {
			return nil, nil
		},
	}
	svc := NewPaymentService(paymentRepo, &fakeUserPaymentRepo{}, &fakeParkingRepo{}, houseRepo)

	err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
		Name:  "A0301房屋保证金",
		Type:  model.PaymentTypeHouse,
		Money: 10000,
	})
	require.NoError(t, err)

	house, ok := gotUnit.(*model.House)
	require.True(t, ok)
	assert.Equal(t, "A0301", house.HouseID)
	assert.Equal(t, "A", house.AreaCode)
}

func TestPaymentPurchaseNameTooShort(t *testing.T) {
	svc := NewPaymentService(&fakePaymentRepo{}, &fakeUserPaymentRepo{}, &fakeParkingRepo{}, &fakeHouseRepo{})
	err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
		Name: "B20", Type: model.PaymentTypeParking, Money: 3000,
	})
	assert.ErrorIs(t, err, ErrNameTooShort)
}

func TestPaymentPurchaseUnitOccupied(t *testing.T) {
	parkingRepo := &fakeParkingRepo{
		getByLot: func(ctx context.Context, lotID string) (*model.Parking, error) {
			return &model.Parking{ID: 1, ParkingLotID: lotID}, nil
		},
	}
	svc := NewPaymentService(&fakePaymentRepo{}, &fakeUserPaymentRepo{}, parkingRepo, &fakeHouseRepo{})

	err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
		Name: "B2017车位保证金", Type: model.PaymentTypeParking, Money: 3000,
	})
	assert.ErrorIs(t, err, ErrUnitOccupied)
}

func TestPaymentFee(t *testing.T) {
	created := false
	paymentRepo := &fakePaymentRepo{
		createFee: func(ctx context.Context, payment *model.Payment) error {
			created = true
			assert.Equal(t, "8月物业费", payment.Name)
			return nil
		},
	}
	userPaymentRepo := &fakeUserPaymentRepo{
		getByUserAndName: func(ctx context.Context, userID uint64, name string) (*model.UserPayment, error) {
			return &model.UserPayment{UserID: userID, Name: name, Status: model.StatusPending}, nil
		},
	}
	svc := NewPaymentService(paymentRepo, userPaymentRepo, &fakeParkingRepo{}, &fakeHouseRepo{})

	err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
		Name: "8月物业费", Type: model.PaymentTypeProperty, Money: 120,
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestPaymentFeeGuards(t *testing.T) {
	t.Run("没有待缴记录", func(t *testing.T) {
		userPaymentRepo := &fakeUserPaymentRepo{
			getByUserAndName: func(ctx context.Context, userID uint64, name string) (*model.UserPayment, error) {
				return nil, nil
			},
		}
		svc := NewPaymentService(&fakePaymentRepo{}, userPaymentRepo, &fakeParkingRepo{}, &fakeHouseRepo{})
		err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
			Name: "8月物业费", Type: model.PaymentTypeProperty, Money: 120,
		})
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("重复缴费", func(t *testing.T) {
		userPaymentRepo := &fakeUserPaymentRepo{
			getByUserAndName: func(ctx context.Context, userID uint64, name string) (*model.UserPayment, error) {
				return &model.UserPayment{Status: model.StatusCompleted}, nil
			},
		}
		svc := NewPaymentService(&fakePaymentRepo{}, userPaymentRepo, &fakeParkingRepo{}, &fakeHouseRepo{})
		err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
			Name: "8月物业费", Type: model.PaymentTypeProperty, Money: 120,
		})
		assert.ErrorIs(t, err, ErrDuplicatePayment)
	})

	t.Run("同名收费通知不存在", func(t *testing.T) {
		paymentRepo := &fakePaymentRepo{
			createFee: func(ctx context.Context, payment *model.Payment) error {
				return gorm.ErrRecordNotFound
			},
		}
		userPaymentRepo := &fakeUserPaymentRepo{
			getByUserAndName: func(ctx context.Context, userID uint64, name string) (*model.UserPayment, error) {
				return &model.UserPayment{Status: model.StatusPending}, nil
			},
		}
		svc := NewPaymentService(paymentRepo, userPaymentRepo, &fakeParkingRepo{}, &fakeHouseRepo{})
		err := svc.Create(context.Background(), 6, &dto.CreatePaymentDTO{
			Name: "8月物业费", Type: model.PaymentTypeProperty, Money: 120,
		})
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}
