package model

// Grade maps to grades. Grade values use the 1.0-5.0 scale where lower is
// better; Remarks is always derived server-side from the grade value.
type Grade struct {
	GradeID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID   string `gorm:"type:uuid;not null;index"                       json:"studentId"`
	SubjectCode string `gorm:"type:varchar(30);not null;index"                json:"subjectCode"`
	SubjectName string `gorm:"type:varchar(150);not null"                     json:"subjectName"`
	Instructor  string `gorm:"type:varchar(100)"                              json:"instructor,omitempty"`
	Grade       string `gorm:"type:varchar(10);not null"                      json:"grade"`
	Units       int    `gorm:"not null"                                       json:"units"`
	Semester    string `gorm:"type:varchar(50);not null"                      json:"semester"`
	Remarks     string `gorm:"type:varchar(20);not null"                      json:"remarks"`
	BaseModel
}

// TableName sets the table name.
func (Grade) TableName() string { return "grades" }
