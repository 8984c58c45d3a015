package middleware

import (
	"Quicker/internal/pkg/response"
	"Quicker/internal/pkg/security"
	"Quicker/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，Token 缺失或无效则 UID 为 0（匿名访问）
func AuthOptionalMiddleware(userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateToken(token)
		if err != nil {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		// 存储层异常不降级为匿名，按系统错误返回
		user, err := userSvc.GetUserByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if user == nil {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("email", user.Email)

		c.Next()
	}
}
