package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParkingCreate(t *testing.T) {
	var created *model.Parking
	parkingRepo := &fakeParkingRepo{
		getByLot: func(ctx context.Context, lotID string) (*model.Parking, error) {
			if lotID == "A1234" {
				return &model.Parking{ID: 1, ParkingLotID: "A1234"}, nil
			}
			return nil, nil
		},
		create: func(ctx context.Context, parking *model.Parking) error {
			created = parking
			return nil
		},
	}
	svc := NewParkingService(parkingRepo)
	ctx := context.Background()

	// 归属人取当前用户，片区从编号首字符派生
	err := svc.Create(ctx, 7, &dto.CreateParkingDTO{ParkingLotID: "B2001"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint64(7), created.UserID)
	assert.Equal(t, "B2001", created.ParkingLotID)
	assert.Equal(t, "B", created.AreaCode)
	assert.Equal(t, model.StatusPending, created.Status)

	// 已被占用的车位
	err = svc.Create(ctx, 7, &dto.CreateParkingDTO{ParkingLotID: "A1234"})
	assert.ErrorIs(t, err, ErrUnitOccupied)
}

func TestHouseCreate(t *testing.T) {
	var created *model.House
	houseRepo := &fakeHouseRepo{
		getByHouseID: func(ctx context.Context, houseID string) (*model.House, error) {
			if houseID == "B0001" {
				return &model.House{ID: 7, HouseID: "B0001"}, nil
			}
			return nil, nil
		},
		create: func(ctx context.Context, house *model.House) error {
			created = house
			return nil
		},
	}
	svc := NewHouseService(houseRepo)
	ctx := context.Background()

	err := svc.Create(ctx, 9, &dto.CreateHouseDTO{HouseID: "C0302"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint64(9), created.UserID)
	assert.Equal(t, "C", created.AreaCode)

	err = svc.Create(ctx, 9, &dto.CreateHouseDTO{HouseID: "B0001"})
	assert.ErrorIs(t, err, ErrUnitOccupied)
}

func TestParkingExists(t *testing.T) {
	parkingRepo := &fakeParkingRepo{
		getByLot: func(ctx context.Context, lotID string) (*model.Parking, error) {
			if lotID == "A1234" {
				return &model.Parking{ID: 1, ParkingLotID: "A1234"}, nil
			}
			return nil, nil
		},
	}
	svc := NewParkingService(parkingRepo)

	exists, err := svc.Exists(context.Background(), "A1234")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(context.Background(), "A9999")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Exists(context.Background(), "")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestHouseExists(t *testing.T) {
	houseRepo := &fakeHouseRepo{
		getByHouseID: func(ctx context.Context, houseID string) (*model.House, error) {
			if houseID == "B0001" {
				return &model.House{ID: 7, HouseID: "B0001"}, nil
			}
			return nil, nil
		},
	}
	svc := NewHouseService(houseRepo)

	exists, err := svc.Exists(context.Background(), "B0001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(context.Background(), "B0002")
	require.NoError(t, err)
	assert.False(t, exists)
}
