package middleware

import (
	"StarEstate/internal/model"
	"StarEstate/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckGroups 检查当前用户是否属于指定的用户组之一
func CheckGroups(requiredGroups ...int8) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("group")
		group, ok := value.(int8)
		if !exists || !ok {
			response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
			c.Abort()
			return
		}

		for _, required := range requiredGroups {
			if group == required {
				c.Next()
				return
			}
		}

		response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
		c.Abort()
	}
}

// CheckAdmin 仅管理员可访问
func CheckAdmin() gin.HandlerFunc {
	return CheckGroups(model.GroupAdmin)
}
