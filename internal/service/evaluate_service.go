package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type EvaluateService interface {
	Create(ctx context.Context, userID uint64, createDTO *dto.CreateEvaluateDTO) error
	List(ctx context.Context, evalType int8, pageDTO *dto.PageDTO) (*dto.PageResult, error)
}

type EvaluateServiceImpl struct {
	evaluateRepo    repository.EvaluateRepo
	orderRepo       repository.ServiceOrderRepo
	userPaymentRepo repository.UserPaymentRepo
}

func NewEvaluateService(
	evaluateRepo repository.EvaluateRepo,
	orderRepo repository.ServiceOrderRepo,
	userPaymentRepo repository.UserPaymentRepo,
) EvaluateService {
	return &EvaluateServiceImpl{
		evaluateRepo:    evaluateRepo,
		orderRepo:       orderRepo,
		userPaymentRepo: userPaymentRepo,
	}
}

// Create 提交评分或反馈，Target 决定落到服务记录还是缴费记录。
// 评分要求分值在 0~5 之间并把目标记录置为已评价；反馈把目标
// 记录置为反馈中并回填名称。
func (s *EvaluateServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateEvaluateDTO) error {
	eval := &model.Evaluate{
		UserID:   userID,
		RecordID: createDTO.RecordID,
		Type:     createDTO.Type,
		Content:  createDTO.Content,
		Weekday:  int(time.Now().Weekday()),
	}

	if createDTO.Type == model.EvaluateTypeScore {
		if createDTO.Score == nil {
			return ErrScoreRequired
		}
		if *createDTO.Score < 0 || *createDTO.Score > 5 {
			return ErrScoreInvalid
		}
		eval.Score = *createDTO.Score

		if createDTO.Target == model.EvaluateTargetPayment {
			up, err := s.userPaymentRepo.GetByID(ctx, createDTO.RecordID)
			if err != nil {
				return err
			}
			if up == nil {
				return ErrRecordNotFound
			}
			if !model.CanTransition(model.KindPayment, up.Status, model.StatusEvaluated) {
				return ErrInvalidTransition
			}
			eval.Name = up.Name
		} else {
			order, err := s.orderRepo.GetByID(ctx, createDTO.RecordID)
			if err != nil {
				return err
			}
			if order == nil {
				return ErrRecordNotFound
			}
			kind := model.KindOfServiceType(order.Type)
			if !model.CanTransition(kind, order.Status, model.StatusEvaluated) {
				return ErrInvalidTransition
			}
			eval.Name = order.Name
		}
		return s.evaluateRepo.CreateScore(ctx, eval, createDTO.Target)
	}

	err := s.evaluateRepo.CreateFeedback(ctx, eval, createDTO.ServiceType, createDTO.Target)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func (s *EvaluateServiceImpl) List(ctx context.Context, evalType int8, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	evals, total, err := s.evaluateRepo.ListByType(ctx, evalType, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: evals}, nil
}
