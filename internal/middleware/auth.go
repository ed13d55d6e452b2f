package middleware

import (
	"net/http"
	"strings"

	"mtg-card-vault/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey 存放在 gin context 里的用户名键
const CurrentUserKey = "currentUser"

// AuthMiddleware 校验 JWT，并在 context 里放入当前用户名。
// token 自包含，这里不回查用户表。
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) URL 查询参数 ?token=xxx（用于导出下载等无法自定义 Header 的场景）
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.Username == "" {
			util.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, claims.Username)
		c.Next()
	}
}

// CurrentUser 取出 AuthMiddleware 放入的用户名
func CurrentUser(c *gin.Context) (string, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
