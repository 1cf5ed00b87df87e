package dto

// CreateSectionRequest creates a section (admin only).
type CreateSectionRequest struct {
	Name        string `json:"name"`
	Course      string `json:"course"`
	YearLevel   string `json:"yearLevel"`
	SchoolYear  string `json:"schoolYear"`
	Description string `json:"description"`
}

// MissingFields returns the names of absent required fields.
func (r *CreateSectionRequest) MissingFields() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Course == "" {
		missing = append(missing, "course")
	}
	if r.YearLevel == "" {
		missing = append(missing, "yearLevel")
	}
	if r.SchoolYear == "" {
		missing = append(missing, "schoolYear")
	}
	return missing
}

// UpdateSectionRequest is a partial update; nil fields are left unchanged.
type UpdateSectionRequest struct {
	Name        *string `json:"name"`
	Course      *string `json:"course"`
	YearLevel   *string `json:"yearLevel"`
	SchoolYear  *string `json:"schoolYear"`
	Description *string `json:"description"`
}

// AssignStudentsRequest assigns students to a section in bulk.
type AssignStudentsRequest struct {
	StudentIDs []string `json:"studentIds" binding:"required,min=1"`
}
