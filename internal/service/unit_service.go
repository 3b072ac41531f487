package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
)

// 房屋与车位的登记、查询和退还。记录既可以由保证金缴费派生，
// 也可以在这里直购，归属人只能是当前登录用户。

type ParkingService interface {
	Create(ctx context.Context, userID uint64, createDTO *dto.CreateParkingDTO) error
	List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	GetByUser(ctx context.Context, userID uint64) (any, error)
	Exists(ctx context.Context, lotID string) (bool, error)
	AreaUsage(ctx context.Context) ([]*repository.AreaCount, error)
	Delete(ctx context.Context, id uint64) error
}

type ParkingServiceImpl struct {
	parkingRepo repository.ParkingRepo
}

func NewParkingService(parkingRepo repository.ParkingRepo) ParkingService {
	return &ParkingServiceImpl{parkingRepo: parkingRepo}
}

// Create 以当前用户名义登记车位，编号已被占用时拒绝
func (s *ParkingServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateParkingDTO) error {
	exist, err := s.parkingRepo.GetByLot(ctx, createDTO.ParkingLotID)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrUnitOccupied
	}
	return s.parkingRepo.Create(ctx, &model.Parking{
		UserID:       userID,
		ParkingLotID: createDTO.ParkingLotID,
		AreaCode:     string([]rune(createDTO.ParkingLotID)[:1]),
		Status:       model.StatusPending,
	})
}

func (s *ParkingServiceImpl) List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	parkings, total, err := s.parkingRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: parkings}, nil
}

func (s *ParkingServiceImpl) GetByUser(ctx context.Context, userID uint64) (any, error) {
	parking, err := s.parkingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if parking == nil {
		return nil, ErrRecordNotFound
	}
	return parking, nil
}

// Exists 车位编号是否已被占用，购买前预检
func (s *ParkingServiceImpl) Exists(ctx context.Context, lotID string) (bool, error) {
	if lotID == "" {
		return false, ErrParamInvalid
	}
	parking, err := s.parkingRepo.GetByLot(ctx, lotID)
	if err != nil {
		return false, err
	}
	return parking != nil, nil
}

// AreaUsage 各片区车位占用数
func (s *ParkingServiceImpl) AreaUsage(ctx context.Context) ([]*repository.AreaCount, error) {
	return s.parkingRepo.CountByArea(ctx)
}

func (s *ParkingServiceImpl) Delete(ctx context.Context, id uint64) error {
	return s.parkingRepo.Delete(ctx, id)
}

type HouseService interface {
	Create(ctx context.Context, userID uint64, createDTO *dto.CreateHouseDTO) error
	List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	GetByUser(ctx context.Context, userID uint64) (any, error)
	Exists(ctx context.Context, houseID string) (bool, error)
	AreaUsage(ctx context.Context) ([]*repository.AreaCount, error)
	Delete(ctx context.Context, id uint64) error
}

type HouseServiceImpl struct {
	houseRepo repository.HouseRepo
}

func NewHouseService(houseRepo repository.HouseRepo) HouseService {
	return &HouseServiceImpl{houseRepo: houseRepo}
}

// Create 以当前用户名义登记房屋，房号已有住户时拒绝
func (s *HouseServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateHouseDTO) error {
	exist, err := s.houseRepo.GetByHouseID(ctx, createDTO.HouseID)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrUnitOccupied
	}
	return s.houseRepo.Create(ctx, &model.House{
		UserID:   userID,
		HouseID:  createDTO.HouseID,
		AreaCode: string([]rune(createDTO.HouseID)[:1]),
		Status:   model.StatusPending,
	})
}

func (s *HouseServiceImpl) List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	houses, total, err := s.houseRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: houses}, nil
}

func (s *HouseServiceImpl) GetByUser(ctx context.Context, userID uint64) (any, error) {
	house, err := s.houseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, ErrRecordNotFound
	}
	return house, nil
}

// Exists 房号是否已有住户
func (s *HouseServiceImpl) Exists(ctx context.Context, houseID string) (bool, error) {
	if houseID == "" {
		return false, ErrParamInvalid
	}
	house, err := s.houseRepo.GetByHouseID(ctx, houseID)
	if err != nil {
		return false, err
	}
	return house != nil, nil
}

// AreaUsage 各片区房屋入住数
func (s *HouseServiceImpl) AreaUsage(ctx context.Context) ([]*repository.AreaCount, error) {
	return s.houseRepo.CountByArea(ctx)
}

func (s *HouseServiceImpl) Delete(ctx context.Context, id uint64) error {
	return s.houseRepo.Delete(ctx, id)
}
