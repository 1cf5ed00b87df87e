package model

// AdminUser maps to admin_users.
type AdminUser struct {
	AdminID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	FirstName    string `gorm:"type:varchar(100);not null"                     json:"firstName"`
	LastName     string `gorm:"type:varchar(100);not null"                     json:"lastName"`
	BaseModel
}

// TableName sets the table name.
func (AdminUser) TableName() string { return "admin_users" }
