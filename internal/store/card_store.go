package store

import (
	"errors"
	"sync"

	"mtg-card-vault/internal/models"
)

// ErrCardNotFound 删除的卡牌不存在（或不属于该用户）
var ErrCardNotFound = errors.New("card not found")

// CardStore 维护 username -> 卡牌序列 的映射。
// 实现必须保证同一用户上的并发 Append/Remove 互斥。
type CardStore interface {
	// Get 返回该用户收藏的副本（调用方可随意修改），用户不存在时返回空切片
	Get(username string) []models.Card
	// Append 依次追加所有卡牌并分配递增 ID，返回追加数量；集合不存在则先创建
	Append(username string, cards []models.Card) int
	// RemoveByID 按服务端分配的 ID 删除一张卡牌，其余卡牌相对顺序不变
	RemoveByID(username string, id uint64) error
	// Ensure 为用户创建一个空集合（注册时调用），已存在则什么都不做
	Ensure(username string)
}

type memoryCardStore struct {
	mu     sync.RWMutex
	cards  map[string][]models.Card
	nextID map[string]uint64
}

// NewCardStore 返回基于内存 map 的 CardStore
func NewCardStore() CardStore {
	return &memoryCardStore{
		cards:  make(map[string][]models.Card),
		nextID: make(map[string]uint64),
	}
}

func (s *memoryCardStore) Get(username string) []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.cards[username]
	// 返回副本，避免调用方拿到内部切片
	out := make([]models.Card, len(list))
	copy(out, list)
	return out
}

func (s *memoryCardStore) Append(username string, cards []models.Card) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[username]; !ok {
		s.cards[username] = make([]models.Card, 0, len(cards))
	}

	for _, card := range cards {
		s.nextID[username]++
		card.ID = s.nextID[username]
		s.cards[username] = append(s.cards[username], card)
	}
	return len(cards)
}

func (s *memoryCardStore) RemoveByID(username string, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.cards[username]
	if !ok {
		return ErrCardNotFound
	}
	for i := range list {
		if list[i].ID == id {
			s.cards[username] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrCardNotFound
}

func (s *memoryCardStore) Ensure(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[username]; !ok {
		s.cards[username] = []models.Card{}
	}
}
