package service

import (
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/redis"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeLike(t *testing.T) {
	mr := newTestRedis(t)
	ctx := context.Background()

	end := time.Now().Add(48 * time.Hour)
	noticeRepo := &fakeNoticeRepo{
		getByID: func(ctx context.Context, id uint64) (*model.Notice, error) {
			return &model.Notice{ID: id, Title: "电梯检修公示", End: &end}, nil
		},
	}
	svc := NewNoticeService(noticeRepo)

	count, liked, err := svc.Like(ctx, 3, 42)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	key := consts.NoticeLikeKey + "3"
	bit, err := redis.GetBit(ctx, key, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, bit)

	// 位图随公示截止延迟过期
	assert.Greater(t, mr.TTL(key), time.Duration(0))

	// 同一个用户重复点赞不计数，仍返回当前点赞数
	count, liked, err = svc.Like(ctx, 3, 42)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(1), count)

	// 不同用户各占一位
	count, liked, err = svc.Like(ctx, 3, 7)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(2), count)
}

func TestNoticeLikeMissingNotice(t *testing.T) {
	newTestRedis(t)
	noticeRepo := &fakeNoticeRepo{
		getByID: func(ctx context.Context, id uint64) (*model.Notice, error) {
			return nil, nil
		},
	}
	svc := NewNoticeService(noticeRepo)
	_, _, err := svc.Like(context.Background(), 3, 42)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
