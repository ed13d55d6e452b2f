package store

import (
	"errors"
	"testing"
)

// ============ 注册测试 ============

func TestRegister(t *testing.T) {
	cards := NewCardStore()
	users := NewUserStore(cards)

	user, err := users.Register("alice", "secret1", "a@x.com")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.Username != "alice" || user.Email != "a@x.com" {
		t.Errorf("用户信息错误: %+v", user)
	}
	if user.PasswordHash == "" || user.PasswordHash == "secret1" {
		t.Error("密码必须哈希存储，不能为空或明文")
	}
	if user.CreatedAt.IsZero() {
		t.Error("注册时间未设置")
	}

	// 注册时应同时创建空收藏
	if got := cards.Get("alice"); len(got) != 0 {
		t.Errorf("新用户收藏应为空，实际 %d 张", len(got))
	}
}

func TestRegister_Duplicate(t *testing.T) {
	users := NewUserStore(NewCardStore())

	if _, err := users.Register("alice", "secret1", "a@x.com"); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	_, err := users.Register("alice", "other-pass", "b@x.com")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("重复注册应返回 ErrDuplicateUser，实际 %v", err)
	}

	// 首次注册的数据不受影响
	if !users.Verify("alice", "secret1") {
		t.Error("原密码应仍然有效")
	}
	if users.Verify("alice", "other-pass") {
		t.Error("第二次注册的密码不应生效")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	users := NewUserStore(NewCardStore())

	cases := []struct {
		name, username, password, email string
	}{
		{"空用户名", "", "pass", "a@x.com"},
		{"空密码", "alice", "", "a@x.com"},
		{"空邮箱", "alice", "pass", ""},
		{"用户名仅空格", "   ", "pass", "a@x.com"},
	}
	for _, tc := range cases {
		if _, err := users.Register(tc.username, tc.password, tc.email); !errors.Is(err, ErrMissingFields) {
			t.Errorf("%s: 应返回 ErrMissingFields，实际 %v", tc.name, err)
		}
	}
}

// ============ 凭证校验测试 ============

func TestVerify(t *testing.T) {
	users := NewUserStore(NewCardStore())
	users.Register("alice", "secret1", "a@x.com")

	if !users.Verify("alice", "secret1") {
		t.Error("正确凭证应通过")
	}
	if users.Verify("alice", "wrong") {
		t.Error("错误密码不应通过")
	}
	if users.Verify("nobody", "secret1") {
		t.Error("不存在的用户不应通过")
	}
	if users.Verify("alice", "") {
		t.Error("空密码不应通过")
	}
}
