package redis

import (
	"StarEstate/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// CountCall 数据服务调用计数 +1，当天首次使用时设置生存时间。
// 计数失败不影响业务，错误直接丢弃。
func CountCall(ctx context.Context, key string) {
	if Rdb == nil {
		return
	}
	pipe := Rdb.TxPipeline()
	pipe.SetNX(ctx, key, 0, consts.DailyTTL)
	pipe.Incr(ctx, key)
	_, _ = pipe.Exec(ctx)
}

// trackCall 每个导出的缓存操作计一次 Redis 调用
func trackCall(ctx context.Context) {
	CountCall(ctx, consts.CallCountRedisKey)
}

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	trackCall(ctx)
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，键不存在返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	trackCall(ctx)
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetMany 批量获取字符串值，缺失的键对应 nil
func GetMany(ctx context.Context, keys ...string) ([]interface{}, error) {
	trackCall(ctx)
	return Rdb.MGet(ctx, keys...).Result()
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	trackCall(ctx)
	return Rdb.Del(ctx, key).Err()
}

// Exists 判断键是否存在
func Exists(ctx context.Context, key string) (bool, error) {
	trackCall(ctx)
	n, err := Rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TTL 获取键的剩余生存时间
func TTL(ctx context.Context, key string) (time.Duration, error) {
	trackCall(ctx)
	return Rdb.TTL(ctx, key).Result()
}

// IncrWithTTL 计数器自增；当天首次使用时初始化并设置生存时间
func IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	trackCall(ctx)
	pipe := Rdb.TxPipeline()
	pipe.SetNX(ctx, key, 0, ttl)
	incr := pipe.Incr(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Incr 计数器自增
func Incr(ctx context.Context, key string) error {
	trackCall(ctx)
	return Rdb.Incr(ctx, key).Err()
}

// Decr 计数器自减
func Decr(ctx context.Context, key string) error {
	trackCall(ctx)
	return Rdb.Decr(ctx, key).Err()
}

// ZAdd 向有序集合添加成员或更新分数
func ZAdd(ctx context.Context, key string, score float64, member string) error {
	trackCall(ctx)
	return Rdb.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

// ZIncrBy 为有序集合成员的分数加上增量
func ZIncrBy(ctx context.Context, key string, increment float64, member string) error {
	trackCall(ctx)
	return Rdb.ZIncrBy(ctx, key, increment, member).Err()
}

// ZScore 获取有序集合成员的分数，成员不存在时 ok 为 false
func ZScore(ctx context.Context, key string, member string) (float64, bool, error) {
	trackCall(ctx)
	score, err := Rdb.ZScore(ctx, key, member).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return score, true, nil
}

// ZCard 获取有序集合的成员数
func ZCard(ctx context.Context, key string) (int64, error) {
	trackCall(ctx)
	return Rdb.ZCard(ctx, key).Result()
}

// ZRemRangeByRank 移除有序集合中给定排名区间的所有成员
func ZRemRangeByRank(ctx context.Context, key string, start, stop int64) error {
	trackCall(ctx)
	return Rdb.ZRemRangeByRank(ctx, key, start, stop).Err()
}

// ZRevRangeWithScores 按分数从高到低获取成员及分数
func ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error) {
	trackCall(ctx)
	return Rdb.ZRevRangeWithScores(ctx, key, start, stop).Result()
}

// Expire 设置键的生存时间
func Expire(ctx context.Context, key string, ttl time.Duration) error {
	trackCall(ctx)
	return Rdb.Expire(ctx, key, ttl).Err()
}

// ExpireAt 设置键在指定时刻过期
func ExpireAt(ctx context.Context, key string, at time.Time) error {
	trackCall(ctx)
	return Rdb.ExpireAt(ctx, key, at).Err()
}

// SetBit 设置位图中指定偏移的位
func SetBit(ctx context.Context, key string, offset int64, value int) error {
	trackCall(ctx)
	return Rdb.SetBit(ctx, key, offset, value).Err()
}

// GetBit 获取位图中指定偏移的位
func GetBit(ctx context.Context, key string, offset int64) (int, error) {
	trackCall(ctx)
	v, err := Rdb.GetBit(ctx, key, offset).Result()
	return int(v), err
}

// BitCount 统计位图中置位的数量
func BitCount(ctx context.Context, key string) (int64, error) {
	trackCall(ctx)
	return Rdb.BitCount(ctx, key, nil).Result()
}

// GetRdbClient 获取redis客户端
func GetRdbClient() *redis.Client {
	return Rdb
}
