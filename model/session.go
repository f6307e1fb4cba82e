package model

import "time"

// Session binds an opaque identifier to a login-time identity snapshot.
// Expiry is passive: rows past ExpiresAt are treated as absent.
type Session struct {
	ID string `gorm:"primaryKey;size:64" json:"-"`

	UserID   uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	Username string `gorm:"column:username;size:50;not null" json:"username"`
	IsAdmin  bool   `gorm:"column:is_admin;not null;default:false" json:"is_admin"`

	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the database table name.
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its TTL.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
