package dto

// CreateGradeRequest creates a grade record (admin only). There is
// deliberately no remarks field: remarks are always derived server-side
// from the grade value.
type CreateGradeRequest struct {
	StudentID   string `json:"studentId"`
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
	Instructor  string `json:"instructor"`
	Grade       string `json:"grade"`
	Units       int    `json:"units"`
	Semester    string `json:"semester"`
}

// MissingFields returns the names of absent required fields.
func (r *CreateGradeRequest) MissingFields() []string {
	var missing []string
	if r.StudentID == "" {
		missing = append(missing, "studentId")
	}
	if r.SubjectCode == "" {
		missing = append(missing, "subjectCode")
	}
	if r.SubjectName == "" {
		missing = append(missing, "subjectName")
	}
	if r.Grade == "" {
		missing = append(missing, "grade")
	}
	if r.Units <= 0 {
		missing = append(missing, "units")
	}
	if r.Semester == "" {
		missing = append(missing, "semester")
	}
	return missing
}

// UpdateGradeRequest is a partial update; nil fields are left unchanged.
type UpdateGradeRequest struct {
	SubjectCode *string `json:"subjectCode"`
	SubjectName *string `json:"subjectName"`
	Instructor  *string `json:"instructor"`
	Grade       *string `json:"grade"`
	Units       *int    `json:"units"`
	Semester    *string `json:"semester"`
}
