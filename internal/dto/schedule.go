package dto

// CreateScheduleItemRequest creates a schedule item (admin only).
type CreateScheduleItemRequest struct {
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
	Day         string `json:"day"`
	TimeStart   string `json:"timeStart"`
	TimeEnd     string `json:"timeEnd"`
	Room        string `json:"room"`
	Instructor  string `json:"instructor"`
}

// MissingFields returns the names of absent required fields.
func (r *CreateScheduleItemRequest) MissingFields() []string {
	var missing []string
	if r.SubjectCode == "" {
		missing = append(missing, "subjectCode")
	}
	if r.SubjectName == "" {
		missing = append(missing, "subjectName")
	}
	if r.Day == "" {
		missing = append(missing, "day")
	}
	if r.TimeStart == "" {
		missing = append(missing, "timeStart")
	}
	if r.TimeEnd == "" {
		missing = append(missing, "timeEnd")
	}
	return missing
}

// UpdateScheduleItemRequest is a partial update; nil fields are left
// unchanged.
type UpdateScheduleItemRequest struct {
	SubjectCode *string `json:"subjectCode"`
	SubjectName *string `json:"subjectName"`
	Day         *string `json:"day"`
	TimeStart   *string `json:"timeStart"`
	TimeEnd     *string `json:"timeEnd"`
	Room        *string `json:"room"`
	Instructor  *string `json:"instructor"`
}
