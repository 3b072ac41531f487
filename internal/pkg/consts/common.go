package consts

import "time"

const (
	DefaultAvatarURL = "media/image/default/avatar.png"
)

// 登录方式，同时作为每日登录计数器的后缀
const (
	LoginMethodID    = "id"    // 账号密码登录
	LoginMethodPhone = "phone" // 手机验证码登录
)

const (
	// RankingCapacity 登录排行榜最多保留的名次
	RankingCapacity = 10

	SmsCodeTTL   = 60 * time.Second
	DailyTTL     = 24 * time.Hour
	TokenTTL     = 7 * 24 * time.Hour
	CommunityTTL = 30 * 24 * time.Hour

	// LikeGraceTTL 点赞位图在公示截止后的保留时长
	LikeGraceTTL = 7 * 24 * time.Hour
)

// 小区固定规划的房屋/车位总量
const (
	TotalHouses   = 405
	TotalParkings = 405
)
