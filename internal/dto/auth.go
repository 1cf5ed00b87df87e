package dto

// LoginRequest carries portal credentials. Username is an admin username or
// a student number; which table it matches decides the role.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login. User is the sanitized
// AdminUserResponse or StudentResponse of the matched account.
type LoginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  interface{} `json:"user"`
}

// ChangePasswordRequest is the student self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"     binding:"required,min=6"`
}

// UpdateStudentAccountRequest updates the student's own credentials.
// Re-entry of the current password is required for any change.
type UpdateStudentAccountRequest struct {
	CurrentPassword string  `json:"currentPassword" binding:"required"`
	StudentNumber   *string `json:"studentId"`
	NewPassword     *string `json:"newPassword"     binding:"omitempty,min=6"`
}

// UpdateAdminAccountRequest updates the admin's own credentials.
type UpdateAdminAccountRequest struct {
	CurrentPassword string  `json:"currentPassword" binding:"required"`
	Username        *string `json:"username"`
	NewPassword     *string `json:"newPassword"     binding:"omitempty,min=6"`
}
