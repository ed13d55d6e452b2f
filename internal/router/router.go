package router

import (
	"time"

	"mtg-card-vault/internal/config"
	"mtg-card-vault/internal/handler"
	"mtg-card-vault/internal/middleware"
	"mtg-card-vault/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine: global middleware, CORS and
// the /api route groups.
func SetupRouter(cfg *config.Config, users store.UserStore, cards store.CardStore, activities store.ActivityStore) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.SecureHeaders())

	// 跨域：前端部署在独立域名，需要带 Authorization 头
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsCfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.AllowCredentials = true
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	// ====== API ======
	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimit.WindowMinutes, cfg.RateLimit.MaxRequests))

	jwtSecret := cfg.JWT.Secret

	// 注册/登录接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(users, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.RequestLog(activities),
	)

	protected.GET("/verify", authHandler.Verify)

	cardHandler := handler.NewCardHandler(cards)
	protected.GET("/cards", cardHandler.ListCards)
	protected.POST("/cards", cardHandler.AddCards)
	protected.DELETE("/cards/:id", cardHandler.RemoveCard)

	exportHandler := handler.NewExportHandler(cards)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	activityHandler := handler.NewActivityHandler(activities)
	protected.GET("/logs", activityHandler.ListActivities)

	return r
}
