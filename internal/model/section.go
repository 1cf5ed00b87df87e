package model

// Section maps to sections. Students reference a section via
// Student.SectionID; deleting a section clears those references, it never
// deletes students.
type Section struct {
	SectionID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Course      string `gorm:"type:varchar(100);not null"                     json:"course"`
	YearLevel   string `gorm:"type:varchar(20);not null"                      json:"yearLevel"`
	SchoolYear  string `gorm:"type:varchar(20);not null"                      json:"schoolYear"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Section) TableName() string { return "sections" }
