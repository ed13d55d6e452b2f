package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 成功返回的载荷，字段直接平铺在顶层（与前端约定一致）
type Response map[string]interface{}

// Success 统一成功返回
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Error 统一错误返回：{"error": "..."}，错误类别由 HTTP 状态码表达
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"error": msg,
	})
}
