package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type NoticeRepo interface {
	CreateNotice(ctx context.Context, notice *model.Notice) error
	GetNoticeByID(ctx context.Context, id uint64) (*model.Notice, error)
	GetNoticeByTitle(ctx context.Context, title string) (*model.Notice, error)
	UpdateNotice(ctx context.Context, id uint64, updates map[string]interface{}) error
	DeleteNotice(ctx context.Context, id uint64) error
	ListNotices(ctx context.Context, noticeType *int8, limit, offset int) ([]*model.Notice, int64, error)
	ListByTypeFilter(ctx context.Context, activityOnly bool) ([]*model.Notice, error)
	ListOpenActivities(ctx context.Context) ([]*model.Notice, error)
	ListActivityRanking(ctx context.Context) ([]*model.Notice, error)
	ListFeeNoticesOfMonth(ctx context.Context, year int, month time.Month) ([]*model.Notice, error)
	ExpireOutdated(ctx context.Context, now time.Time) error
}

type NoticeRepoImpl struct {
	db *gorm.DB
}

func NewNoticeRepo(db *gorm.DB) NoticeRepo {
	return &NoticeRepoImpl{db: db}
}

func (s *NoticeRepoImpl) CreateNotice(ctx context.Context, notice *model.Notice) error {
	return s.db.WithContext(ctx).Create(notice).Error
}

func (s *NoticeRepoImpl) GetNoticeByID(ctx context.Context, id uint64) (*model.Notice, error) {
	var notice model.Notice
	result := s.db.WithContext(ctx).First(&notice, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &notice, nil
}

func (s *NoticeRepoImpl) GetNoticeByTitle(ctx context.Context, title string) (*model.Notice, error) {
	var notice model.Notice
	result := s.db.WithContext(ctx).Where("title = ?", title).First(&notice)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &notice, nil
}

func (s *NoticeRepoImpl) UpdateNotice(ctx context.Context, id uint64, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.Notice{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *NoticeRepoImpl) DeleteNotice(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Notice{}, id).Error
}

func (s *NoticeRepoImpl) ListNotices(ctx context.Context, noticeType *int8, limit, offset int) ([]*model.Notice, int64, error) {
	var notices []*model.Notice
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Notice{})
	if noticeType != nil {
		query = query.Where("type = ?", *noticeType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id DESC").Limit(limit).Offset(offset).Find(&notices)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return notices, total, nil
}

// ListByTypeFilter 首页内容：activityOnly 为真取活动，否则取活动以外的通知
func (s *NoticeRepoImpl) ListByTypeFilter(ctx context.Context, activityOnly bool) ([]*model.Notice, error) {
	var notices []*model.Notice
	query := s.db.WithContext(ctx).Order("id DESC")
	if activityOnly {
		query = query.Where("type = ?", model.NoticeTypeActivity)
	} else {
		query = query.Where("type <> ?", model.NoticeTypeActivity)
	}
	result := query.Find(&notices)
	if result.Error != nil {
		return nil, result.Error
	}
	return notices, nil
}

// ListOpenActivities 返回仍可报名的活动
func (s *NoticeRepoImpl) ListOpenActivities(ctx context.Context) ([]*model.Notice, error) {
	var notices []*model.Notice
	result := s.db.WithContext(ctx).
		Where("type = ? AND `join` < need", model.NoticeTypeActivity).
		Find(&notices)
	if result.Error != nil {
		return nil, result.Error
	}
	return notices, nil
}

// ListActivityRanking 活动按参与人数倒序
func (s *NoticeRepoImpl) ListActivityRanking(ctx context.Context) ([]*model.Notice, error) {
	var notices []*model.Notice
	result := s.db.WithContext(ctx).
		Where("type = ?", model.NoticeTypeActivity).
		Order("`join` DESC").
		Find(&notices)
	if result.Error != nil {
		return nil, result.Error
	}
	return notices, nil
}

// ListFeeNoticesOfMonth 返回指定月份发布的收费通知
func (s *NoticeRepoImpl) ListFeeNoticesOfMonth(ctx context.Context, year int, month time.Month) ([]*model.Notice, error) {
	var notices []*model.Notice
	result := s.db.WithContext(ctx).
		Where("type = ? AND YEAR(created_at) = ? AND MONTH(created_at) = ?",
			model.NoticeTypeFee, year, int(month)).
		Find(&notices)
	if result.Error != nil {
		return nil, result.Error
	}
	return notices, nil
}

// ExpireOutdated 把截止时间早于 now 的公示置为过期，读路径惰性调用
func (s *NoticeRepoImpl) ExpireOutdated(ctx context.Context, now time.Time) error {
	return s.db.WithContext(ctx).
		Model(&model.Notice{}).
		Where("end < ? AND status = ?", now, model.NoticeStatusOpen).
		Update("status", model.NoticeStatusExpired).Error
}
