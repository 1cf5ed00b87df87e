package model

// Student maps to students. StudentNumber is the unique school-issued
// identifier the student logs in with; StudentID is the row key.
type Student struct {
	StudentID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentNumber string  `gorm:"type:varchar(30);not null;uniqueIndex"          json:"studentId"`
	FirstName     string  `gorm:"type:varchar(100);not null"                     json:"firstName"`
	LastName      string  `gorm:"type:varchar(100);not null"                     json:"lastName"`
	Course        string  `gorm:"type:varchar(100);not null"                     json:"course"`
	YearLevel     string  `gorm:"type:varchar(20);not null"                      json:"yearLevel"`
	Email         string  `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	ContactNumber string  `gorm:"type:varchar(30)"                               json:"contactNumber,omitempty"`
	Address       string  `gorm:"type:text"                                      json:"address,omitempty"`
	Status        string  `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	SectionID     *string `gorm:"type:uuid"                                      json:"sectionId"`
	PasswordHash  string  `gorm:"type:varchar(255);not null"                     json:"-"`
	BaseModel

	Section *Section `gorm:"foreignKey:SectionID;references:SectionID" json:"section,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }
