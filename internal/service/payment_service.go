package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PaymentService interface {
	Create(ctx context.Context, userID uint64, createDTO *dto.CreatePaymentDTO) error
	List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	Delete(ctx context.Context, id uint64) error
}

type PaymentServiceImpl struct {
	paymentRepo     repository.PaymentRepo
	userPaymentRepo repository.UserPaymentRepo
	parkingRepo     repository.ParkingRepo
	houseRepo       repository.HouseRepo
}

func NewPaymentService(
	paymentRepo repository.PaymentRepo,
	userPaymentRepo repository.UserPaymentRepo,
	parkingRepo repository.ParkingRepo,
	houseRepo repository.HouseRepo,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:     paymentRepo,
		userPaymentRepo: userPaymentRepo,
		parkingRepo:     parkingRepo,
		houseRepo:       houseRepo,
	}
}

// Create 新建缴费单。保证金类款项派生房屋/车位使用记录并
// 镜像一条前台缴费记录；日常费用把同名收费通知的参与数 +1
// 并把用户的待缴记录标记完成。
func (s *PaymentServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreatePaymentDTO) error {
	payment := &model.Payment{
		UserID: userID,
		Name:   createDTO.Name,
		Type:   createDTO.Type,
		Money:  createDTO.Money,
		Status: model.StatusCompleted,
	}

	if createDTO.Type >= model.PurchaseTypeMin {
		return s.createPurchase(ctx, payment)
	}
	return s.createFee(ctx, payment)
}

func (s *PaymentServiceImpl) createPurchase(ctx context.Context, payment *model.Payment) error {
	code, area, ok := model.DeriveUnitCode(payment.Name)
	if !ok {
		return ErrNameTooShort
	}

	var unit any
	if payment.Type == model.PaymentTypeParking {
		exist, err := s.parkingRepo.GetByLot(ctx, code)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrUnitOccupied
		}
		unit = &model.Parking{
			UserID:       payment.UserID,
			ParkingLotID: code,
			AreaCode:     area,
			Status:       payment.Status,
		}
	} else {
		exist, err := s.houseRepo.GetByHouseID(ctx, code)
		if err != nil {
			return err
		}
		if exist != nil {
			return ErrUnitOccupied
		}
		unit = &model.House{
			UserID:   payment.UserID,
			HouseID:  code,
			AreaCode: area,
			Status:   payment.Status,
		}
	}

	userPayment := &model.UserPayment{
		UserID: payment.UserID,
		Name:   payment.Name,
		Type:   payment.Type,
		Money:  payment.Money,
		Status: payment.Status,
	}
	return s.paymentRepo.CreatePurchase(ctx, payment, unit, userPayment)
}

func (s *PaymentServiceImpl) createFee(ctx context.Context, payment *model.Payment) error {
	pending, err := s.userPaymentRepo.GetByUserAndName(ctx, payment.UserID, payment.Name)
	if err != nil {
		return err
	}
	if pending == nil {
		return ErrRecordNotFound
	}
	if pending.Status == model.StatusCompleted {
		return ErrDuplicatePayment
	}

	err = s.paymentRepo.CreateFee(ctx, payment)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func (s *PaymentServiceImpl) List(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	payments, total, err := s.paymentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: payments}, nil
}

func (s *PaymentServiceImpl) Delete(ctx context.Context, id uint64) error {
	return s.paymentRepo.Delete(ctx, id)
}
