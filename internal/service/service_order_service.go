package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/repository"
	"context"
)

type ServiceOrderService interface {
	ListByUser(ctx context.Context, userID uint64, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	ExistsByOrder(ctx context.Context, orderID uint64, serviceType string) (bool, error)
	Delete(ctx context.Context, userID uint64, id uint64) error
}

type ServiceOrderServiceImpl struct {
	orderRepo repository.ServiceOrderRepo
}

func NewServiceOrderService(orderRepo repository.ServiceOrderRepo) ServiceOrderService {
	return &ServiceOrderServiceImpl{orderRepo: orderRepo}
}

func (s *ServiceOrderServiceImpl) ListByUser(ctx context.Context, userID uint64, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	orders, total, err := s.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: orders}, nil
}

// ExistsByOrder 提交反馈前的预检：对应业务线的前台记录是否存在
func (s *ServiceOrderServiceImpl) ExistsByOrder(ctx context.Context, orderID uint64, serviceType string) (bool, error) {
	return s.orderRepo.ExistsByOrderAndKind(ctx, orderID, serviceType)
}

// Delete 只允许删除自己的记录，级联清理由仓储层在事务里完成
func (s *ServiceOrderServiceImpl) Delete(ctx context.Context, userID uint64, id uint64) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrRecordNotFound
	}
	if order.UserID != userID {
		return UnauthorizedError
	}
	return s.orderRepo.DeleteWithCounterpart(ctx, order)
}
