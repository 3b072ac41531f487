package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type HouseRepo interface {
	Create(ctx context.Context, house *model.House) error
	GetByHouseID(ctx context.Context, houseID string) (*model.House, error)
	GetByUser(ctx context.Context, userID uint64) (*model.House, error)
	List(ctx context.Context, limit, offset int) ([]*model.House, int64, error)
	ListSince(ctx context.Context, since time.Time) ([]*model.House, error)
	Count(ctx context.Context) (int64, error)
	CountByArea(ctx context.Context) ([]*AreaCount, error)
	Delete(ctx context.Context, id uint64) error
}

type HouseRepoImpl struct {
	db *gorm.DB
}

func NewHouseRepo(db *gorm.DB) HouseRepo {
	return &HouseRepoImpl{db: db}
}

func (s *HouseRepoImpl) Create(ctx context.Context, house *model.House) error {
	return s.db.WithContext(ctx).Create(house).Error
}

func (s *HouseRepoImpl) GetByHouseID(ctx context.Context, houseID string) (*model.House, error) {
	var house model.House
	result := s.db.WithContext(ctx).Where("house_id = ?", houseID).First(&house)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &house, nil
}

func (s *HouseRepoImpl) GetByUser(ctx context.Context, userID uint64) (*model.House, error) {
	var house model.House
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&house)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &house, nil
}

func (s *HouseRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.House, int64, error) {
	var houses []*model.House
	var total int64

	query := s.db.WithContext(ctx).Model(&model.House{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&houses)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return houses, total, nil
}

func (s *HouseRepoImpl) ListSince(ctx context.Context, since time.Time) ([]*model.House, error) {
	var houses []*model.House
	result := s.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&houses)
	if result.Error != nil {
		return nil, result.Error
	}
	return houses, nil
}

func (s *HouseRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.House{}).Count(&count).Error
	return count, err
}

func (s *HouseRepoImpl) CountByArea(ctx context.Context) ([]*AreaCount, error) {
	var counts []*AreaCount
	result := s.db.WithContext(ctx).Model(&model.House{}).
		Select("area_code, COUNT(*) AS count").
		Group("area_code").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	return counts, nil
}

func (s *HouseRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.House{}, id).Error
}
