package consts

const (
	AuthTokenKey    = "auth:token:"
	AuthUserKey     = "auth:user:"
	SmsCodeKey      = "sms:code:"
	LoginRankingKey = "login:ranking"
	LoginCountKey   = "login:count:"
	NoticeLikeKey   = "notice:like:"

	StatAllUserKey  = "stat:all_user"
	StatHouseKey    = "stat:house"
	StatResidentKey = "stat:resident"
	StatParkingKey  = "stat:parking"

	CallCountMySQLKey = "stat:calls:mysql"
	CallCountRedisKey = "stat:calls:redis"
)
