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

func TestScoreBuckets(t *testing.T) {
	evalRepo := &fakeEvaluateRepo{
		listScores: func(ctx context.Context, since time.Time) ([]*model.Evaluate, error) {
			return []*model.Evaluate{
				{Weekday: 1, Score: 2},   // 周一差评
				{Weekday: 1, Score: 4},   // 周一中评
				{Weekday: 1, Score: 5},   // 周一好评
				{Weekday: 5, Score: 5},   // 周五好评
				{Weekday: 0, Score: 2.5}, // 周日差评
				{Weekday: 9, Score: 5},   // 脏数据，丢弃
			}, nil
		},
	}
	svc := NewReportService(nil, nil, nil, nil, nil, nil, evalRepo)

	buckets, err := svc.ScoreBuckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, buckets.Negative[1])
	assert.Equal(t, 1, buckets.General[1])
	assert.Equal(t, 1, buckets.Praise[1])
	assert.Equal(t, 1, buckets.Praise[5])
	assert.Equal(t, 1, buckets.Negative[0])

	total := 0
	for day := 0; day < 7; day++ {
		total += buckets.Negative[day] + buckets.General[day] + buckets.Praise[day]
	}
	assert.Equal(t, 5, total)
}

func TestCommunityStats(t *testing.T) {
	newTestRedis(t)
	ctx := context.Background()

	userRepo := &fakeUserRepo{
		countUsers: func(ctx context.Context) (int64, error) { return 120, nil },
		countByGroup: func(ctx context.Context) (map[int8]int64, error) {
			return map[int8]int64{
				model.GroupResident: 100,
				model.GroupWorker:   15,
				model.GroupAdmin:    5,
			}, nil
		},
	}
	houseRepo := &fakeHouseRepo{
		count: func(ctx context.Context) (int64, error) { return 80, nil },
	}
	parkingRepo := &fakeParkingRepo{
		count: func(ctx context.Context) (int64, error) { return 60, nil },
	}
	svc := NewReportService(userRepo, nil, nil, nil, parkingRepo, houseRepo, nil)

	// 缓存为空时会落库重算并回填
	stats, err := svc.CommunityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.AllUser)
	assert.Equal(t, int64(100), stats.Resident)
	assert.Equal(t, int64(80), stats.HouseUse)
	assert.Equal(t, int64(consts.TotalHouses-80), stats.HouseFree)
	assert.Equal(t, int64(60), stats.ParkUse)
	assert.Equal(t, int64(consts.TotalParkings-60), stats.ParkFree)

	cached, err := redis.GetValue(ctx, consts.StatAllUserKey)
	require.NoError(t, err)
	assert.Equal(t, "120", cached)

	// 底层数据变了，但未过期前读的还是缓存
	userRepo.countUsers = func(ctx context.Context) (int64, error) { return 999, nil }
	stats, err = svc.CommunityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.AllUser)

	// 主动刷新后缓存更新
	stats, err = svc.RefreshCommunityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(999), stats.AllUser)
}

func TestCallCounts(t *testing.T) {
	newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, redis.SetWithExpiration(ctx, consts.CallCountMySQLKey, "37", time.Hour))
	svc := NewReportService(nil, nil, nil, nil, nil, nil, nil)

	// 写入计一次 Redis 调用，读取本身再计一次
	counts, err := svc.CallCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(37), counts.MySQL)
	assert.Equal(t, int64(2), counts.Redis)
}
