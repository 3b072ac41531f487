package service

import (
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDelete(t *testing.T) {
	mr := newTestRedis(t)
	require.NoError(t, mr.Set(consts.StatAllUserKey, "40"))
	require.NoError(t, mr.Set(consts.StatResidentKey, "35"))

	deleted := uint64(0)
	userRepo := &fakeUserRepo{
		getByID: func(ctx context.Context, id uint64) (*model.User, error) {
			if id == 7 {
				return &model.User{ID: 7, Group: model.GroupResident}, nil
			}
			if id == 8 {
				return &model.User{ID: 8, Group: model.GroupWorker}, nil
			}
			return nil, nil
		},
		deleteUser: func(ctx context.Context, id uint64) error {
			deleted = id
			return nil
		},
	}
	svc := NewUserService(userRepo)
	ctx := context.Background()

	// 删住户，总人数和住户数一起回落
	require.NoError(t, svc.DeleteUser(ctx, 7))
	assert.Equal(t, uint64(7), deleted)
	all, err := mr.Get(consts.StatAllUserKey)
	require.NoError(t, err)
	assert.Equal(t, "39", all)
	resident, err := mr.Get(consts.StatResidentKey)
	require.NoError(t, err)
	assert.Equal(t, "34", resident)

	// 删师傅只动总人数
	require.NoError(t, svc.DeleteUser(ctx, 8))
	all, err = mr.Get(consts.StatAllUserKey)
	require.NoError(t, err)
	assert.Equal(t, "38", all)
	resident, err = mr.Get(consts.StatResidentKey)
	require.NoError(t, err)
	assert.Equal(t, "34", resident)

	// 不存在的用户
	err = svc.DeleteUser(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserGroupCounts(t *testing.T) {
	userRepo := &fakeUserRepo{
		countByGroup: func(ctx context.Context) (map[int8]int64, error) {
			return map[int8]int64{
				model.GroupResident: 35,
				model.GroupWorker:   4,
				model.GroupAdmin:    1,
			}, nil
		},
	}
	svc := NewUserService(userRepo)

	counts, err := svc.GroupCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(35), counts[model.GroupResident])
	assert.Equal(t, int64(4), counts[model.GroupWorker])
	assert.Equal(t, int64(1), counts[model.GroupAdmin])
}

func TestUserDeleteWithoutCachedStats(t *testing.T) {
	mr := newTestRedis(t)

	userRepo := &fakeUserRepo{
		getByID: func(ctx context.Context, id uint64) (*model.User, error) {
			return &model.User{ID: id, Group: model.GroupResident}, nil
		},
		deleteUser: func(ctx context.Context, id uint64) error {
			return nil
		},
	}
	svc := NewUserService(userRepo)

	// 缓存没预热就不落一个负数计数器进去
	require.NoError(t, svc.DeleteUser(context.Background(), 7))
	assert.False(t, mr.Exists(consts.StatAllUserKey))
	assert.False(t, mr.Exists(consts.StatResidentKey))
}
