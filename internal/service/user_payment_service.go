package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"time"
)

type UserPaymentService interface {
	ListByUser(ctx context.Context, userID uint64, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	Exists(ctx context.Context, userID uint64, name string) (bool, error)
	Delete(ctx context.Context, userID uint64, id uint64) error
}

type UserPaymentServiceImpl struct {
	userPaymentRepo repository.UserPaymentRepo
	noticeRepo      repository.NoticeRepo
}

func NewUserPaymentService(userPaymentRepo repository.UserPaymentRepo, noticeRepo repository.NoticeRepo) UserPaymentService {
	return &UserPaymentServiceImpl{
		userPaymentRepo: userPaymentRepo,
		noticeRepo:      noticeRepo,
	}
}

// ListByUser 先按当月收费通知为用户补齐待缴账单，再返回记录
func (s *UserPaymentServiceImpl) ListByUser(ctx context.Context, userID uint64, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	if err := s.seedMonthlyFees(ctx, userID); err != nil {
		return nil, err
	}

	limit, offset := pageDTO.Normalize()
	ups, total, err := s.userPaymentRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: ups}, nil
}

// seedMonthlyFees 当月每条收费通知对应一条待缴记录，已有的跳过
func (s *UserPaymentServiceImpl) seedMonthlyFees(ctx context.Context, userID uint64) error {
	now := time.Now()
	notices, err := s.noticeRepo.ListFeeNoticesOfMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return err
	}

	pending := make([]*model.UserPayment, 0, len(notices))
	for _, notice := range notices {
		exists, err := s.userPaymentRepo.ExistsByUserAndName(ctx, userID, notice.Title)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		pending = append(pending, &model.UserPayment{
			UserID: userID,
			Name:   notice.Title,
			Type:   model.FeeTypeOf(notice.Title),
			Money:  notice.Money,
			Status: model.StatusPending,
		})
	}
	return s.userPaymentRepo.CreateBatch(ctx, pending)
}

// Exists 判断用户名下是否已有同名缴费记录，前端下单前预检
func (s *UserPaymentServiceImpl) Exists(ctx context.Context, userID uint64, name string) (bool, error) {
	if name == "" {
		return false, ErrParamInvalid
	}
	return s.userPaymentRepo.ExistsByUserAndName(ctx, userID, name)
}

func (s *UserPaymentServiceImpl) Delete(ctx context.Context, userID uint64, id uint64) error {
	up, err := s.userPaymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if up == nil {
		return ErrRecordNotFound
	}
	if up.UserID != userID {
		return UnauthorizedError
	}
	return s.userPaymentRepo.DeleteWithFeedback(ctx, up)
}
