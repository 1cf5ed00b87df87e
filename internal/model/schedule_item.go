package model

// ScheduleItem maps to schedule_items. Items are not tied to students; a
// student's schedule is derived by matching subject codes against the
// student's grade records. Day may be a comma-joined multi-day string
// ("Mon,Wed").
type ScheduleItem struct {
	ScheduleItemID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SubjectCode    string `gorm:"type:varchar(30);not null;index"                json:"subjectCode"`
	SubjectName    string `gorm:"type:varchar(150);not null"                     json:"subjectName"`
	Day            string `gorm:"type:varchar(50);not null"                      json:"day"`
	TimeStart      string `gorm:"type:varchar(10);not null"                      json:"timeStart"`
	TimeEnd        string `gorm:"type:varchar(10);not null"                      json:"timeEnd"`
	Room           string `gorm:"type:varchar(50)"                               json:"room,omitempty"`
	Instructor     string `gorm:"type:varchar(100)"                              json:"instructor,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (ScheduleItem) TableName() string { return "schedule_items" }
