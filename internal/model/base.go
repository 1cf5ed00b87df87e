package model

import "time"

// Roles recognized by the portal. A session's role always comes from the
// table its credentials matched at login, never from client input.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// BaseModel holds the timestamp columns every business table carries.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}
