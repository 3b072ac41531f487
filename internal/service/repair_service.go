package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
)

type RepairService interface {
	Apply(ctx context.Context, userID uint64, applyDTO *dto.RepairsApplyDTO) error
	Advance(ctx context.Context, applyID uint64, assignDTO *dto.RepairAssignDTO) error
	ListApplies(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error)
	DeleteApply(ctx context.Context, id uint64) error
}

type RepairServiceImpl struct {
	repairsRepo repository.RepairsRepo
	userRepo    repository.UserRepo
}

func NewRepairService(repairsRepo repository.RepairsRepo, userRepo repository.UserRepo) RepairService {
	return &RepairServiceImpl{
		repairsRepo: repairsRepo,
		userRepo:    userRepo,
	}
}

func (s *RepairServiceImpl) Apply(ctx context.Context, userID uint64, applyDTO *dto.RepairsApplyDTO) error {
	apply := &model.RepairsApply{
		UserID: userID,
		Name:   applyDTO.Name,
		Type:   applyDTO.Type,
		Status: model.StatusPending,
	}
	return s.repairsRepo.CreateApplyWithOrder(ctx, apply)
}

// Advance 推进维修工单。派单时校验维修师傅空闲；
// 换人时旧师傅释放、新师傅占用；完结时释放当前师傅。
func (s *RepairServiceImpl) Advance(ctx context.Context, applyID uint64, assignDTO *dto.RepairAssignDTO) error {
	apply, err := s.repairsRepo.GetApplyByID(ctx, applyID)
	if err != nil {
		return err
	}
	if apply == nil {
		return ErrRecordNotFound
	}

	newStatus := model.Status(assignDTO.Status)
	if !model.CanTransition(model.KindRepair, apply.Status, newStatus) {
		return ErrInvalidTransition
	}

	var worker *model.User
	if assignDTO.WorkerID != 0 && assignDTO.WorkerID != apply.WorkerID {
		worker, err = s.userRepo.GetUserByID(ctx, assignDTO.WorkerID)
		if err != nil {
			return err
		}
		if worker == nil || worker.Group != model.GroupWorker {
			return ErrWorkerInvalid
		}
		if worker.TaskID != 0 {
			return ErrWorkerBusy
		}
	}
	if newStatus == apply.Status && worker == nil {
		return nil
	}
	return s.repairsRepo.UpdateWithWorker(ctx, apply, newStatus, worker)
}

func (s *RepairServiceImpl) ListApplies(ctx context.Context, pageDTO *dto.PageDTO) (*dto.PageResult, error) {
	limit, offset := pageDTO.Normalize()
	applies, total, err := s.repairsRepo.ListApplies(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PageResult{Total: total, List: applies}, nil
}

func (s *RepairServiceImpl) DeleteApply(ctx context.Context, id uint64) error {
	return s.repairsRepo.DeleteApply(ctx, id)
}
