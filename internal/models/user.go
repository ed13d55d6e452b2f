package models

import "time"

// User represents application user. Records are immutable once
// registered and live for the lifetime of the process.
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // 盐值+哈希，绝不返回给前端
	CreatedAt    time.Time `json:"created_at"`
}
