package middleware

import (
	"StarEstate/internal/pkg/consts"
	"StarEstate/internal/pkg/redis"
	"StarEstate/internal/pkg/response"
	"StarEstate/internal/pkg/security"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// AuthMiddleware 校验不透明登录令牌并把用户快照注入 Context。
// 令牌本身不携带信息，身份以 Redis 里的快照为准，注销即失效。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if len(token) != security.TokenLength {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		value, err := redis.GetValue(c.Request.Context(), consts.AuthTokenKey+token)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if value == "" {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		var snapshot security.UserSnapshot
		if err = json.Unmarshal([]byte(value), &snapshot); err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set("user_id", snapshot.UserID)
		c.Set("username", snapshot.Username)
		c.Set("group", snapshot.Group)
		c.Set("token", token)

		c.Next()
	}
}
