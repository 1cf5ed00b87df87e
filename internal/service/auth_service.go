package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campus-portal/backend/config"
	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/repository"
)

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike; login never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrWrongPassword is returned when the re-entered current password
	// does not match on an account update.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrUsernameTaken is returned when an account update would collide
	// with an existing username or student number.
	ErrUsernameTaken = errors.New("username already in use")
	// ErrAdminNotFound is returned when a session references an admin row
	// that no longer exists.
	ErrAdminNotFound = errors.New("admin account not found")
)

// AuthService handles login, logout and self-service account updates. The
// role of a session is always decided by which table the credentials
// matched, never by anything the client sends.
type AuthService struct {
	admins   repository.AdminUserRepository
	students repository.StudentRepository
	sessions *SessionService
	logger   *zap.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(admins repository.AdminUserRepository, students repository.StudentRepository, sessions *SessionService, logger *zap.Logger) *AuthService {
	return &AuthService{
		admins:   admins,
		students: students,
		sessions: sessions,
		logger:   logger,
	}
}

// Login authenticates against the admin table first, then the student table
// (by student number), and opens a session for whichever matched.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.admins.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if admin != nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		session, err := s.sessions.Create(ctx, admin.AdminID, model.RoleAdmin)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			Token: session.Token,
			Role:  model.RoleAdmin,
			User:  dto.NewAdminUserResponse(admin),
		}, nil
	}

	student, err := s.students.GetByStudentNumber(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	session, err := s.sessions.Create(ctx, student.StudentID, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: session.Token,
		Role:  model.RoleStudent,
		User:  dto.NewStudentResponse(student),
	}, nil
}

// Logout ends the session for the given token. Already-ended sessions
// succeed silently.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ChangeStudentPassword rotates the student's password after verifying the
// current one.
func (s *AuthService) ChangeStudentPassword(ctx context.Context, studentID string, req *dto.ChangePasswordRequest) error {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	student.PasswordHash = string(hash)
	return s.students.Update(ctx, student)
}

// UpdateStudentAccount updates the student's own login credentials. The
// current password must be re-entered for any change.
func (s *AuthService) UpdateStudentAccount(ctx context.Context, studentID string, req *dto.UpdateStudentAccountRequest) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return nil, ErrWrongPassword
	}

	if req.StudentNumber != nil && *req.StudentNumber != student.StudentNumber {
		existing, err := s.students.GetByStudentNumber(ctx, *req.StudentNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
		student.StudentNumber = *req.StudentNumber
	}
	if req.NewPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		student.PasswordHash = string(hash)
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// UpdateAdminAccount updates the admin's own login credentials.
func (s *AuthService) UpdateAdminAccount(ctx context.Context, adminID string, req *dto.UpdateAdminAccountRequest) (*dto.AdminUserResponse, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return nil, ErrWrongPassword
	}

	if req.Username != nil && *req.Username != admin.Username {
		existing, err := s.admins.GetByUsername(ctx, *req.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
		admin.Username = *req.Username
	}
	if req.NewPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		admin.PasswordHash = string(hash)
	}

	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, err
	}
	resp := dto.NewAdminUserResponse(admin)
	return &resp, nil
}

// EnsureAdmin creates the seed admin account when the admin table is empty,
// so a fresh deployment is never locked out.
func (s *AuthService) EnsureAdmin(ctx context.Context, seed *config.SeedConfig) error {
	count, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed admin password: %w", err)
	}
	admin := &model.AdminUser{
		Username:     seed.AdminUsername,
		PasswordHash: string(hash),
		FirstName:    seed.AdminFirstName,
		LastName:     seed.AdminLastName,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating seed admin: %w", err)
	}
	s.logger.Info("seed admin account created", zap.String("username", seed.AdminUsername))
	return nil
}
