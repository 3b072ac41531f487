package repository

import (
	"StarEstate/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)
	UpdateUser(ctx context.Context, id uint64, updates map[string]interface{}) error
	DeleteUser(ctx context.Context, id uint64) error
	ListUsers(ctx context.Context, name string, limit, offset int) ([]*model.User, int64, error)
	ListFreeWorkers(ctx context.Context) ([]*model.User, error)
	CountByGroup(ctx context.Context) (map[int8]int64, error)
	UsernameIDMap(ctx context.Context) (map[string]uint64, error)
	CountUsers(ctx context.Context) (int64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// GetUserByID 按主键获取用户，不存在时返回 nil
func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).Where("phone = ?", phone).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, id uint64, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

// ListUsers 分页列出用户，name 不为空时按姓名模糊过滤
func (s *UserRepoImpl) ListUsers(ctx context.Context, name string, limit, offset int) ([]*model.User, int64, error) {
	var users []*model.User
	var total int64

	query := s.db.WithContext(ctx).Model(&model.User{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.Order("id").Limit(limit).Offset(offset).Find(&users)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return users, total, nil
}

// ListFreeWorkers 返回未承接任务的维修师傅
func (s *UserRepoImpl) ListFreeWorkers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	result := s.db.WithContext(ctx).
		Where("user_group = ? AND task_id = 0", model.GroupWorker).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// CountByGroup 按用户组统计人数
func (s *UserRepoImpl) CountByGroup(ctx context.Context) (map[int8]int64, error) {
	type row struct {
		Group int8  `gorm:"column:user_group"`
		Num   int64 `gorm:"column:num"`
	}
	var rows []row
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Select("user_group, COUNT(*) AS num").
		Group("user_group").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[int8]int64, len(rows))
	for _, r := range rows {
		counts[r.Group] = r.Num
	}
	return counts, nil
}

// UsernameIDMap 返回全部用户的账号到 id 的映射
func (s *UserRepoImpl) UsernameIDMap(ctx context.Context) (map[string]uint64, error) {
	type row struct {
		ID       uint64
		Username string
	}
	var rows []row
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id, username").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	m := make(map[string]uint64, len(rows))
	for _, r := range rows {
		m[r.Username] = r.ID
	}
	return m, nil
}

func (s *UserRepoImpl) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.User{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
