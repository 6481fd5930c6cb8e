package middleware

import (
	"strings"

	"codestreak_backend/internal/config"
	"codestreak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware 管理后台的授权门禁。
// 只有持有效管理员 JWT 的请求才能到达 /api/admin 下的操作。
func AdminAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseAdminJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin", claims)
		c.Next()
	}
}
