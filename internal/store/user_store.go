package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"mtg-card-vault/internal/models"
	"mtg-card-vault/internal/util"
)

var (
	// ErrDuplicateUser 用户名已被注册
	ErrDuplicateUser = errors.New("user already exists")
	// ErrMissingFields 注册字段缺失
	ErrMissingFields = errors.New("missing required fields")
)

// UserStore 维护 username -> 账号记录 的映射。
// 账号一旦创建不可修改、不可删除。
type UserStore interface {
	// Register 创建账号并为其建立空收藏；用户名重复返回 ErrDuplicateUser
	Register(username, password, email string) (*models.User, error)
	// Verify 校验用户名+密码；无论用户是否存在耗时一致
	Verify(username, password string) bool
}

type memoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
	cards CardStore

	// dummyHash 用于用户不存在时也跑一次完整校验，防止响应时间泄露用户是否存在
	dummyHash string
}

// NewUserStore 返回基于内存 map 的 UserStore。注册成功时会在 cards 里创建空收藏。
func NewUserStore(cards CardStore) UserStore {
	dummy, err := util.HashPassword("decoy-password-never-matches")
	if err != nil {
		// HashPassword 只有在随机源不可用时才会失败
		panic("init dummy hash: " + err.Error())
	}
	return &memoryUserStore{
		users:     make(map[string]*models.User),
		cards:     cards,
		dummyHash: dummy,
	}
}

func (s *memoryUserStore) Register(username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || email == "" {
		return nil, ErrMissingFields
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return nil, ErrDuplicateUser
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	s.users[username] = user

	// 注册是唯一会创建收藏的路径
	s.cards.Ensure(username)

	return user, nil
}

func (s *memoryUserStore) Verify(username, password string) bool {
	s.mu.RLock()
	user, ok := s.users[username]
	s.mu.RUnlock()

	if !ok {
		// 用户不存在也做一次完整哈希比对，耗时与存在时一致
		util.CheckPassword(password, s.dummyHash)
		return false
	}
	return util.CheckPassword(password, user.PasswordHash)
}
