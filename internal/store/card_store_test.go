package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"mtg-card-vault/internal/models"
)

// ============ 追加/查询测试 ============

func TestAppendAndGet(t *testing.T) {
	s := NewCardStore()

	count := s.Append("alice", []models.Card{
		{Name: "Bolt"},
		{Name: "Shock"},
	})
	if count != 2 {
		t.Errorf("追加数量错误: 期望2，实际%d", count)
	}

	got := s.Get("alice")
	if len(got) != 2 {
		t.Fatalf("收藏数量错误: 期望2，实际%d", len(got))
	}
	// 保持输入顺序
	if got[0].Name != "Bolt" || got[1].Name != "Shock" {
		t.Errorf("顺序错误: %+v", got)
	}
	// 每张卡分配递增 ID
	if got[0].ID == 0 || got[1].ID <= got[0].ID {
		t.Errorf("ID 应递增且非零: %d, %d", got[0].ID, got[1].ID)
	}

	// 多次追加得到全部卡牌的按序拼接
	s.Append("alice", []models.Card{{Name: "Counterspell"}})
	got = s.Get("alice")
	if len(got) != 3 || got[2].Name != "Counterspell" {
		t.Errorf("二次追加后顺序错误: %+v", got)
	}
}

func TestGet_UnknownUser(t *testing.T) {
	s := NewCardStore()
	if got := s.Get("nobody"); got == nil || len(got) != 0 {
		t.Errorf("未知用户应返回空切片，实际 %v", got)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewCardStore()
	s.Append("alice", []models.Card{{Name: "Bolt"}})

	got := s.Get("alice")
	got[0].Name = "Mutated"

	if s.Get("alice")[0].Name != "Bolt" {
		t.Error("Get 返回值被修改不应影响内部状态")
	}
}

// ============ 用户隔离测试 ============

func TestCollectionsAreIsolated(t *testing.T) {
	s := NewCardStore()
	s.Append("u1", []models.Card{{Name: "Bolt"}})
	s.Append("u2", []models.Card{{Name: "Shock"}})

	if got := s.Get("u1"); len(got) != 1 || got[0].Name != "Bolt" {
		t.Errorf("u1 收藏错误: %+v", got)
	}
	if got := s.Get("u2"); len(got) != 1 || got[0].Name != "Shock" {
		t.Errorf("u2 收藏错误: %+v", got)
	}
}

// ============ 删除测试 ============

func TestRemoveByID(t *testing.T) {
	s := NewCardStore()
	s.Append("alice", []models.Card{{Name: "A"}, {Name: "B"}, {Name: "C"}})

	cards := s.Get("alice")
	if err := s.RemoveByID("alice", cards[1].ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	got := s.Get("alice")
	if len(got) != 2 {
		t.Fatalf("删除后数量错误: 期望2，实际%d", len(got))
	}
	// 其余卡牌相对顺序不变
	if got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("删除后顺序错误: %+v", got)
	}

	// 同一 ID 再删一次应报不存在
	if err := s.RemoveByID("alice", cards[1].ID); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("重复删除应返回 ErrCardNotFound，实际 %v", err)
	}
}

func TestRemoveByID_NotFound(t *testing.T) {
	s := NewCardStore()
	s.Append("alice", []models.Card{{Name: "A"}})

	if err := s.RemoveByID("alice", 9999); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("未知 ID 应返回 ErrCardNotFound，实际 %v", err)
	}
	if err := s.RemoveByID("nobody", 1); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("未知用户应返回 ErrCardNotFound，实际 %v", err)
	}

	// 删除失败不应改变收藏
	if got := s.Get("alice"); len(got) != 1 {
		t.Errorf("失败的删除不应影响收藏: %+v", got)
	}
}

// 删除后新追加的卡牌不会复用旧 ID
func TestRemoveByID_NoIDReuse(t *testing.T) {
	s := NewCardStore()
	s.Append("alice", []models.Card{{Name: "A"}})
	firstID := s.Get("alice")[0].ID

	s.RemoveByID("alice", firstID)
	s.Append("alice", []models.Card{{Name: "B"}})

	if got := s.Get("alice"); got[0].ID == firstID {
		t.Errorf("新卡牌不应复用已删除卡牌的 ID: %d", firstID)
	}
}

// ============ 并发测试 ============

func TestConcurrentAppend(t *testing.T) {
	s := NewCardStore()

	const workers = 10
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Append("alice", []models.Card{{Name: fmt.Sprintf("c-%d-%d", w, i)}})
			}
		}(w)
	}
	wg.Wait()

	got := s.Get("alice")
	if len(got) != workers*perWorker {
		t.Errorf("并发追加丢失: 期望%d，实际%d", workers*perWorker, len(got))
	}

	// ID 不重复
	seen := make(map[uint64]bool, len(got))
	for _, card := range got {
		if seen[card.ID] {
			t.Fatalf("ID 重复: %d", card.ID)
		}
		seen[card.ID] = true
	}
}

func TestConcurrentRemove(t *testing.T) {
	s := NewCardStore()

	var cards []models.Card
	for i := 0; i < 100; i++ {
		cards = append(cards, models.Card{Name: fmt.Sprintf("c-%d", i)})
	}
	s.Append("alice", cards)

	ids := make([]uint64, 0, 100)
	for _, card := range s.Get("alice") {
		ids = append(ids, card.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids[:50] {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			if err := s.RemoveByID("alice", id); err != nil {
				t.Errorf("并发删除失败 id=%d: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	if got := s.Get("alice"); len(got) != 50 {
		t.Errorf("并发删除后数量错误: 期望50，实际%d", len(got))
	}
}
