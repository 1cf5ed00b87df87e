package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/repository"
)

var (
	// ErrStudentNotFound is returned when the referenced student row does
	// not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrDuplicateStudentNumber is returned when a create or update would
	// reuse an existing student number.
	ErrDuplicateStudentNumber = errors.New("student number already exists")
)

// StudentService handles the admin-side student roster.
type StudentService struct {
	students repository.StudentRepository
	sections repository.SectionRepository
	logger   *zap.Logger
}

// NewStudentService creates the student service.
func NewStudentService(students repository.StudentRepository, sections repository.SectionRepository, logger *zap.Logger) *StudentService {
	return &StudentService{
		students: students,
		sections: sections,
		logger:   logger,
	}
}

// Create registers a student. The student number must be unused and a
// referenced section must exist.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	existing, err := s.students.GetByStudentNumber(ctx, req.StudentNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateStudentNumber
	}

	if req.SectionID != nil {
		if _, err := s.sections.GetByID(ctx, *req.SectionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSectionNotFound
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	student := &model.Student{
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Course:        req.Course,
		YearLevel:     req.YearLevel,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Status:        status,
		SectionID:     req.SectionID,
		PasswordHash:  string(hash),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("student created",
		zap.String("id", student.StudentID),
		zap.String("studentNumber", student.StudentNumber))

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// Get returns one student by row ID.
func (s *StudentService) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// List returns the full roster.
func (s *StudentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

// Update applies a partial update. A changed student number must still be
// unique; a changed section must exist.
func (s *StudentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.StudentNumber != nil && *req.StudentNumber != student.StudentNumber {
		existing, err := s.students.GetByStudentNumber(ctx, *req.StudentNumber)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateStudentNumber
		}
		student.StudentNumber = *req.StudentNumber
	}
	if req.SectionID != nil && (student.SectionID == nil || *req.SectionID != *student.SectionID) {
		if _, err := s.sections.GetByID(ctx, *req.SectionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSectionNotFound
			}
			return nil, err
		}
		student.SectionID = req.SectionID
		student.Section = nil
	}
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.YearLevel != nil {
		student.YearLevel = *req.YearLevel
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.ContactNumber != nil {
		student.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.Status != nil {
		student.Status = *req.Status
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		student.PasswordHash = string(hash)
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a student and, via the schema's cascade, their grades.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("student deleted", zap.String("id", id))
	return nil
}
