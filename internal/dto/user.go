package dto

import "campus-portal/backend/internal/model"

// AdminUserResponse is the sanitized admin account view. The password hash
// never appears in any response.
type AdminUserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// NewAdminUserResponse maps an AdminUser row to its response form.
func NewAdminUserResponse(a *model.AdminUser) AdminUserResponse {
	return AdminUserResponse{
		ID:        a.AdminID,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      model.RoleAdmin,
	}
}

// StudentResponse is the sanitized student view used by both the admin CRUD
// endpoints and the student's own profile.
type StudentResponse struct {
	ID            string  `json:"id"`
	StudentNumber string  `json:"studentId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Course        string  `json:"course"`
	YearLevel     string  `json:"yearLevel"`
	Email         string  `json:"email,omitempty"`
	ContactNumber string  `json:"contactNumber,omitempty"`
	Address       string  `json:"address,omitempty"`
	Status        string  `json:"status"`
	SectionID     *string `json:"sectionId"`
	SectionName   string  `json:"sectionName,omitempty"`
	Role          string  `json:"role"`
}

// NewStudentResponse maps a Student row to its response form.
func NewStudentResponse(s *model.Student) StudentResponse {
	resp := StudentResponse{
		ID:            s.StudentID,
		StudentNumber: s.StudentNumber,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Course:        s.Course,
		YearLevel:     s.YearLevel,
		Email:         s.Email,
		ContactNumber: s.ContactNumber,
		Address:       s.Address,
		Status:        s.Status,
		SectionID:     s.SectionID,
		Role:          model.RoleStudent,
	}
	if s.Section != nil {
		resp.SectionName = s.Section.Name
	}
	return resp
}

// NewStudentResponses maps a slice of Student rows.
func NewStudentResponses(students []model.Student) []StudentResponse {
	result := make([]StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, NewStudentResponse(&students[i]))
	}
	return result
}
