package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"time"
)

type ActivityService interface {
	Apply(ctx context.Context, userID uint64, applyDTO *dto.ActivityApplyDTO) error
	Review(ctx context.Context, applyID uint64, reviewDTO *dto.ReviewDTO) error
	ListApplies(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	DeleteApply(ctx context.Context, id uint64) error
}

type ActivityServiceImpl struct {
	activityRepo repository.ActivityRepo
	noticeRepo   repository.NoticeRepo
}

func NewActivityService(activityRepo repository.ActivityRepo, noticeRepo repository.NoticeRepo) ActivityService {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		noticeRepo:   noticeRepo,
	}
}

// Apply 报名活动：活动必须未截止、有剩余名额，且不能重复报名。
// 报名同时生成一条以活动标题命名的前台服务记录。
func (s *ActivityServiceImpl) Apply(ctx context.Context, userID uint64, applyDTO *dto.ActivityApplyDTO) error {
	notice, err := s.noticeRepo.GetNoticeByID(ctx, applyDTO.NoticeID)
	if err != nil {
		return err
	}
	if notice == nil || notice.Type != model.NoticeTypeActivity {
		return ErrRecordNotFound
	}
	if notice.End != nil && notice.End.Before(time.Now()) {
		return ErrActivityExpired
	}
	// 本次报名后必须仍留有余量
	if notice.Need > 0 && notice.Join+1 >= notice.Need {
		return ErrActivityFull
	}

	exists, err := s.activityRepo.ExistsByUserAndNotice(ctx, userID, applyDTO.NoticeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateApply
	}

	apply := &model.ActivityApply{
		UserID:   userID,
		NoticeID: applyDTO.NoticeID,
		Status:   model.StatusPending,
	}
	return s.activityRepo.CreateApplyWithOrder(ctx, apply, notice.Title)
}

// Review 审批报名，通过时活动参与数 +1，状态同步到前台记录
func (s *ActivityServiceImpl) Review(ctx context.Context, applyID uint64, reviewDTO *dto.ReviewDTO) error {
	apply, err := s.activityRepo.GetApplyByID(ctx, applyID)
	if err != nil {
		return err
	}
	if apply == nil {
		return ErrRecordNotFound
	}

	newStatus := model.Status(reviewDTO.Status)
	if !model.CanTransition(model.KindActivity, apply.Status, newStatus) {
		return ErrInvalidTransition
	}
	if newStatus == apply.Status {
		return nil
	}
	return s.activityRepo.Review(ctx, apply, newStatus)
}

func (s *ActivityServiceImpl) ListApplies(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	applies, total, err := s.activityRepo.ListApplies(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: applies}, nil
}

func (s *ActivityServiceImpl) DeleteApply(ctx context.Context, id uint64) error {
	return s.activityRepo.DeleteApply(ctx, id)
}
