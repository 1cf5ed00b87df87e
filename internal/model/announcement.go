package model

// Announcement maps to announcements. Readable by both roles, writable by
// admins only.
type Announcement struct {
	AnnouncementID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title          string `gorm:"type:varchar(200);not null"                     json:"title"`
	Description    string `gorm:"type:text;not null"                             json:"description"`
	Date           string `gorm:"type:varchar(20);not null"                      json:"date"`
	IsImportant    bool   `gorm:"not null;default:false"                         json:"isImportant"`
	Category       string `gorm:"type:varchar(50)"                               json:"category,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Announcement) TableName() string { return "announcements" }
