package dto

// CreateStudentRequest creates a student record (admin only). Required
// fields are checked explicitly so the response can name the missing ones.
type CreateStudentRequest struct {
	StudentNumber string  `json:"studentId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Course        string  `json:"course"`
	YearLevel     string  `json:"yearLevel"`
	Email         string  `json:"email"         binding:"omitempty,email"`
	ContactNumber string  `json:"contactNumber"`
	Address       string  `json:"address"`
	Status        string  `json:"status"`
	SectionID     *string `json:"sectionId"`
	Password      string  `json:"password"`
}

// MissingFields returns the names of absent required fields.
func (r *CreateStudentRequest) MissingFields() []string {
	var missing []string
	if r.StudentNumber == "" {
		missing = append(missing, "studentId")
	}
	if r.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.LastName == "" {
		missing = append(missing, "lastName")
	}
	if r.Course == "" {
		missing = append(missing, "course")
	}
	if r.YearLevel == "" {
		missing = append(missing, "yearLevel")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

// UpdateStudentRequest is a partial update; nil fields are left unchanged.
type UpdateStudentRequest struct {
	StudentNumber *string `json:"studentId"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Course        *string `json:"course"`
	YearLevel     *string `json:"yearLevel"`
	Email         *string `json:"email"         binding:"omitempty,email"`
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
	SectionID     *string `json:"sectionId"`
	Password      *string `json:"password"`
}
