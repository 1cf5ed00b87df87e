package model

import "time"

// Session maps to sessions. The token is the primary key; ExpiresAt is epoch
// milliseconds, fixed at creation (no sliding renewal).
type Session struct {
	Token     string    `gorm:"type:varchar(64);primaryKey"        json:"token"`
	UserID    string    `gorm:"type:uuid;not null"                 json:"userId"`
	Role      string    `gorm:"type:varchar(20);not null"          json:"role"`
	ExpiresAt int64     `gorm:"not null;index"                     json:"expiresAt"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the table name.
func (Session) TableName() string { return "sessions" }

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt < now.UnixMilli()
}
