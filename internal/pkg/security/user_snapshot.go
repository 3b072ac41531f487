package security

// UserSnapshot 随登录令牌存入 Redis 的用户信息快照
// 认证中间件凭它还原请求身份，避免每个请求都查库
type UserSnapshot struct {
	UserID   uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Group    int8   `json:"group"`
	Avatar   string `json:"avatar"`
}
