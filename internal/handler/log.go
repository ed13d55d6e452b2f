package handler

import (
	"net/http"
	"strconv"

	"mtg-card-vault/internal/middleware"
	"mtg-card-vault/internal/store"
	"mtg-card-vault/internal/util"

	"github.com/gin-gonic/gin"
)

// ActivityHandler 负责操作日志查询接口
type ActivityHandler struct {
	Activities store.ActivityStore
}

func NewActivityHandler(activities store.ActivityStore) *ActivityHandler {
	return &ActivityHandler{Activities: activities}
}

// ListActivities 列出当前用户最近的操作记录，最新的在前
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	list := h.Activities.List(username)

	// 可选的条数限制：?limit=20
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			util.Error(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		if limit < len(list) {
			list = list[:limit]
		}
	}

	util.Success(c, util.Response{
		"logs": list,
	})
}
