package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mtg-card-vault/internal/middleware"
	"mtg-card-vault/internal/models"
	"mtg-card-vault/internal/store"
	"mtg-card-vault/internal/util"

	"github.com/gin-gonic/gin"
)

// CardHandler 负责收藏相关接口
type CardHandler struct {
	Cards store.CardStore
}

func NewCardHandler(cards store.CardStore) *CardHandler {
	return &CardHandler{Cards: cards}
}

// ---------- 查询收藏 ----------

func (h *CardHandler) ListCards(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	util.Success(c, util.Response{
		"cards": h.Cards.Get(username),
	})
}

// ---------- 批量添加 ----------

type addCardsReq struct {
	Cards []models.Card `json:"cards"`
}

func (h *CardHandler) AddCards(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req addCardsReq
	// cards 缺失、为 null 或不是数组都算参数错误
	if err := c.ShouldBindJSON(&req); err != nil || req.Cards == nil {
		util.Error(c, http.StatusBadRequest, "Cards must be an array")
		return
	}

	count := h.Cards.Append(username, req.Cards)

	util.Success(c, util.Response{
		"success": true,
		"count":   count,
	})
}

// ---------- 删除一张卡牌 ----------

func (h *CardHandler) RemoveCard(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid card id")
		return
	}

	if err := h.Cards.RemoveByID(username, id); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			util.Error(c, http.StatusNotFound, "Card not found")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Failed to remove card")
		return
	}

	util.Success(c, util.Response{
		"success": true,
	})
}
