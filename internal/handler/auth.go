package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"mtg-card-vault/internal/middleware"
	"mtg-card-vault/internal/store"
	"mtg-card-vault/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler 负责注册/登录/token 校验接口
type AuthHandler struct {
	Users     store.UserStore
	JWTSecret string
	TokenTTL  time.Duration
}

// NewAuthHandler 构造函数
func NewAuthHandler(users store.UserStore, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 7 * 24
	}
	return &AuthHandler{
		Users:     users,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// ---------- 注册 ----------

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	user, err := h.Users.Register(req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			util.Error(c, http.StatusConflict, "User already exists")
			return
		}
		if errors.Is(err, store.ErrMissingFields) {
			util.Error(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	util.Success(c, util.Response{
		"token":    token,
		"username": user.Username,
	})
}

// ---------- 登录 ----------

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing username or password")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Missing username or password")
		return
	}

	// 统一返回同一条错误信息，不暴露用户名是否存在
	if !h.Users.Verify(req.Username, req.Password) {
		util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, req.Username, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	util.Success(c, util.Response{
		"token":    token,
		"username": req.Username,
	})
}

// ---------- token 校验 ----------

// Verify 返回当前 token 对应的用户名（需要经过 AuthMiddleware）
func (h *AuthHandler) Verify(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "No token provided")
		return
	}

	util.Success(c, util.Response{
		"username": username,
	})
}
