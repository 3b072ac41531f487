package service

import (
	"StarEstate/internal/api/dto"
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/minio"
	"StarEstate/internal/pkg/security"
	"StarEstate/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	SearchUsers(ctx context.Context, searchDTO *dto.SearchUserDTO) (*dto.PageResult, error)
	ListFreeWorkers(ctx context.Context) ([]*dto.UserDTO, error)
	UsernameIDMap(ctx context.Context) (map[string]uint64, error)
	GroupCounts(ctx context.Context) (map[int8]int64, error)
	UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id uint64, pwDTO *dto.ChangePasswordDTO) error
	UpdateAvatar(ctx context.Context, id uint64, objectName string) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toDTO(user)
}

func (s *UserServiceImpl) SearchUsers(ctx context.Context, searchDTO *dto.SearchUserDTO) (*dto.PageResult, error) {
	limit, offset := searchDTO.Normalize()
	users, total, err := s.userRepo.ListUsers(ctx, searchDTO.Name, limit, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTO, err := s.toDTO(user)
		if err != nil {
			return nil, err
		}
		list = append(list, userDTO)
	}
	return &dto.PageResult{Total: total, List: list}, nil
}

// ListFreeWorkers 当前没有在办维修任务的维修师傅
func (s *UserServiceImpl) ListFreeWorkers(ctx context.Context) ([]*dto.UserDTO, error) {
	workers, err := s.userRepo.ListFreeWorkers(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.UserDTO, 0, len(workers))
	for _, worker := range workers {
		workerDTO, err := s.toDTO(worker)
		if err != nil {
			return nil, err
		}
		list = append(list, workerDTO)
	}
	return list, nil
}

// UsernameIDMap 后台导入数据时用账号反查 id
func (s *UserServiceImpl) UsernameIDMap(ctx context.Context) (map[string]uint64, error) {
	return s.userRepo.UsernameIDMap(ctx)
}

// GroupCounts 各用户组人数，后台用户概览用
func (s *UserServiceImpl) GroupCounts(ctx context.Context) (map[int8]int64, error) {
	return s.userRepo.CountByGroup(ctx)
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	updates := make(map[string]interface{})
	if updateDTO.Name != nil {
		updates["name"] = *updateDTO.Name
	}
	if updateDTO.Phone != nil {
		other, err := s.userRepo.GetUserByPhone(ctx, *updateDTO.Phone)
		if err != nil {
			return err
		}
		if other != nil && other.ID != id {
			return ErrUserPhoneExist
		}
		updates["phone"] = *updateDTO.Phone
	}
	if updateDTO.Sex != nil {
		updates["sex"] = *updateDTO.Sex
	}
	if updateDTO.Message != nil {
		updates["message"] = *updateDTO.Message
	}
	if updateDTO.IDNum != nil {
		updates["id_num"] = *updateDTO.IDNum
	}
	if updateDTO.Status != nil {
		updates["status"] = *updateDTO.Status
	}
	if updateDTO.Group != nil {
		updates["user_group"] = *updateDTO.Group
	}
	if len(updates) == 0 {
		return nil
	}
	updates["info_complete"] = true
	return s.userRepo.UpdateUser(ctx, id, updates)
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id uint64, pwDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = security.CheckPasswordHash(pwDTO.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}
	passwordHash, err := security.HashPassword(pwDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateUser(ctx, id, map[string]interface{}{"password": passwordHash})
}

func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, id uint64, objectName string) error {
	return s.userRepo.UpdateUser(ctx, id, map[string]interface{}{"avatar": objectName})
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	bumpUserStats(ctx, user.Group, -1)
	return nil
}

func (s *UserServiceImpl) toDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	if user.Avatar != "" {
		userDTO.Avatar = minio.GetPublicURL(user.Avatar)
	}
	return userDTO, nil
}
