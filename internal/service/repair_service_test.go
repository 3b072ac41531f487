package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepairsRepo struct {
	repository.RepairsRepo
	getByID    func(ctx context.Context, id uint64) (*model.RepairsApply, error)
	createWith func(ctx context.Context, apply *model.RepairsApply) error
	update     func(ctx context.Context, apply *model.RepairsApply, newStatus model.Status, worker *model.User) error
}

func (f *fakeRepairsRepo) GetApplyByID(ctx context.Context, id uint64) (*model.RepairsApply, error) {
	return f.getByID(ctx, id)
}

func (f *fakeRepairsRepo) CreateApplyWithOrder(ctx context.Context, apply *model.RepairsApply) error {
	return f.createWith(ctx, apply)
}

func (f *fakeRepairsRepo) UpdateWithWorker(ctx context.Context, apply *model.RepairsApply, newStatus model.Status, worker *model.User) error {
	return f.update(ctx, apply, newStatus, worker)
}

func TestRepairApply(t *testing.T) {
	var created *model.RepairsApply
	repairsRepo := &fakeRepairsRepo{
		createWith: func(ctx context.Context, apply *model.RepairsApply) error {
			created = apply
			return nil
		},
	}
	svc := NewRepairService(repairsRepo, &fakeUserRepo{})

	err := svc.Apply(context.Background(), 4, &dto.RepairsApplyDTO{Name: "3 栋电梯故障", Type: "C0"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint64(4), created.UserID)
	assert.Equal(t, "C0", created.Type)
	assert.Equal(t, model.StatusPending, created.Status)
}

func TestRepairAdvanceAssignsWorker(t *testing.T) {
	var gotWorker *model.User
	repairsRepo := &fakeRepairsRepo{
		getByID: func(ctx context.Context, id uint64) (*model.RepairsApply, error) {
			return &model.RepairsApply{ID: id, Status: model.StatusPending}, nil
		},
		update: func(ctx context.Context, apply *model.RepairsApply, newStatus model.Status, worker *model.User) error {
			assert.Equal(t, model.StatusAssigned, newStatus)
			gotWorker = worker
			return nil
		},
	}
	userRepo := &fakeUserRepo{
		getByID: func(ctx context.Context, id uint64) (*model.User, error) {
			return &model.User{ID: id, Name: "王师傅", Group: model.GroupWorker, TaskID: 0}, nil
		},
	}
	svc := NewRepairService(repairsRepo, userRepo)

	err := svc.Advance(context.Background(), 1, &dto.RepairAssignDTO{
		Status:   int8(model.StatusAssigned),
		WorkerID: 11,
	})
	require.NoError(t, err)
	require.NotNil(t, gotWorker)
	assert.Equal(t, uint64(11), gotWorker.ID)
}

func TestRepairAdvanceGuards(t *testing.T) {
	apply := &model.RepairsApply{ID: 1, Status: model.StatusPending}
	repairsRepo := &fakeRepairsRepo{
		getByID: func(ctx context.Context, id uint64) (*model.RepairsApply, error) {
			return apply, nil
		},
	}

	t.Run("非法流转", func(t *testing.T) {
		svc := NewRepairService(repairsRepo, &fakeUserRepo{})
		err := svc.Advance(context.Background(), 1, &dto.RepairAssignDTO{
			Status: int8(model.StatusCompleted),
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("不是维修师傅", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByID: func(ctx context.Context, id uint64) (*model.User, error) {
				return &model.User{ID: id, Group: model.GroupResident}, nil
			},
		}
		svc := NewRepairService(repairsRepo, userRepo)
		err := svc.Advance(context.Background(), 1, &dto.RepairAssignDTO{
			Status:   int8(model.StatusAssigned),
			WorkerID: 11,
		})
		assert.ErrorIs(t, err, ErrWorkerInvalid)
	})

	t.Run("师傅手上有活", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByID: func(ctx context.Context, id uint64) (*model.User, error) {
				return &model.User{ID: id, Group: model.GroupWorker, TaskID: 99}, nil
			},
		}
		svc := NewRepairService(repairsRepo, userRepo)
		err := svc.Advance(context.Background(), 1, &dto.RepairAssignDTO{
			Status:   int8(model.StatusAssigned),
			WorkerID: 11,
		})
		assert.ErrorIs(t, err, ErrWorkerBusy)
	})

	t.Run("工单不存在", func(t *testing.T) {
		missing := &fakeRepairsRepo{
			getByID: func(ctx context.Context, id uint64) (*model.RepairsApply, error) {
				return nil, nil
			},
		}
		svc := NewRepairService(missing, &fakeUserRepo{})
		err := svc.Advance(context.Background(), 1, &dto.RepairAssignDTO{
			Status: int8(model.StatusAssigned),
		})
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestRepairAdvanceSameStatusNoop(t *testing.T) {
	repairsRepo := &fakeRepairsRepo{
		getByID: func(ctx context.Context, id uint64) (*model.RepairsApply, error) {
			return &model.RepairsApply{ID: id, Status: model.StatusInProgress, WorkerID: 11}, nil
		},
		update: func(ctx context.Context, apply *model.RepairsApply, newStatus model.Status, worker *model.User) error {
			t.Fatal("update should not be called when nothing changes")
			return nil
		},
	}
	svc := NewRepairService(repairsRepo, &fakeUserRepo{})

	err := svc.Advance(context.Background(), 1, &dto.RepairAssignDTO{
		Status:   int8(model.StatusInProgress),
		WorkerID: 11,
	})
	assert.NoError(t, err)
}
