package store

import (
	"sync"
	"time"
)

// Activity 一条操作记录
type Activity struct {
	RequestID string    `json:"request_id"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityStore 按用户保存最近的操作记录（有界，超过容量丢弃最旧的）
type ActivityStore interface {
	Record(username string, a Activity)
	// List 返回该用户的记录，最新的在前
	List(username string) []Activity
}

type memoryActivityStore struct {
	mu      sync.RWMutex
	logs    map[string][]Activity
	maxSize int
}

// NewActivityStore 返回内存实现，每个用户最多保留 maxSize 条
func NewActivityStore(maxSize int) ActivityStore {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &memoryActivityStore{
		logs:    make(map[string][]Activity),
		maxSize: maxSize,
	}
}

func (s *memoryActivityStore) Record(username string, a Activity) {
	if username == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.logs[username], a)
	if len(list) > s.maxSize {
		list = list[len(list)-s.maxSize:]
	}
	s.logs[username] = list
}

func (s *memoryActivityStore) List(username string) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.logs[username]
	// 倒序副本：最新的在前
	out := make([]Activity, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out
}
