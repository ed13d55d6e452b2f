package middleware

import (
	"time"

	"mtg-card-vault/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLog 为每个请求生成 request id，并把登录用户的写操作记入活动日志。
func RequestLog(activities store.ActivityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Writer.Header().Set("X-Request-ID", requestID)

		// 执行请求
		c.Next()

		// 只记录登录用户的写操作
		username, ok := CurrentUser(c)
		if !ok {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" {
			return
		}

		activities.Record(username, store.Activity{
			RequestID: requestID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			CreatedAt: time.Now(),
		})
	}
}
