package middleware

import (
	"net/http"
	"time"

	"mtg-card-vault/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit 按客户端 IP 限流，默认 15 分钟 100 次。
// 计数存在进程内存里，和其余状态一样不跨进程。
func RateLimit(windowMinutes int, maxRequests int64) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Duration(windowMinutes) * time.Minute,
		Limit:  maxRequests,
	}
	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			util.Error(c, http.StatusTooManyRequests, "Too many requests, please try again later")
		}),
	)
}
