package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// AreaCount 按片区分组的使用量统计
type AreaCount struct {
	AreaCode string `gorm:"column:area_code" json:"area_code"`
	Count    int64  `gorm:"column:count" json:"count"`
}

type ParkingRepo interface {
	Create(ctx context.Context, parking *model.Parking) error
	GetByLot(ctx context.Context, lotID string) (*model.Parking, error)
	GetByUser(ctx context.Context, userID uint64) (*model.Parking, error)
	List(ctx context.Context, limit, offset int) ([]*model.Parking, int64, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.Parking, error)
	Count(ctx context.Context) (int64, error)
	CountByArea(ctx context.Context) ([]*AreaCount, error)
	Delete(ctx context.Context, id uint64) error
}

type ParkingRepoImpl struct {
	db *gorm.DB
}

func NewParkingRepo(db *gorm.DB) ParkingRepo {
	return &ParkingRepoImpl{db: db}
}

func (s *ParkingRepoImpl) Create(ctx context.Context, parking *model.Parking) error {
	return s.db.WithContext(ctx).Create(parking).Error
}

func (s *ParkingRepoImpl) GetByLot(ctx context.Context, lotID string) (*model.Parking, error) {
	var parking model.Parking
	result := s.db.WithContext(ctx).Where("parking_lot_id = ?", lotID).First(&parking)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &parking, nil
}

func (s *ParkingRepoImpl) GetByUser(ctx context.Context, userID uint64) (*model.Parking, error) {
	var parking model.Parking
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&parking)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &parking, nil
}

func (s *ParkingRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.Parking, int64, error) {
	var parkings []*model.Parking
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Parking{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&parkings)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return parkings, total, nil
}

func (s *ParkingRepoImpl) ListSince(ctx context.Context, since time.Time) ([]*model.Parking, error) {
	var parkings []*model.Parking
	result := s.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&parkings)
	if result.Error != nil {
		return nil, result.Error
	}
	return parkings, nil
}

func (s *ParkingRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Parking{}).Count(&count).Error
	return count, err
}

func (s *ParkingRepoImpl) CountByArea(ctx context.Context) ([]*AreaCount, error) {
	var counts []*AreaCount
	result := s.db.WithContext(ctx).Model(&model.Parking{}).
		Select("area_code, COUNT(*) AS count").
		Group("area_code").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	return counts, nil
}

func (s *ParkingRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Parking{}, id).Error
}
