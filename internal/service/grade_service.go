package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/repository"
)

var (
	// ErrGradeNotFound is returned when the referenced grade row does not
	// exist.
	ErrGradeNotFound = errors.New("grade not found")
	// ErrInvalidGradeValue is returned when the grade value does not parse
	// as a number in the 1.0-5.0 scale.
	ErrInvalidGradeValue = errors.New("grade must be a number between 1.0 and 5.0")
)

// Passing boundary on the 1.0-5.0 scale; 3.0 itself passes.
const passingGrade = 3.0

// GradeService handles grade records. Remarks are always derived from the
// grade value, on update as well as create; clients can never set them.
type GradeService struct {
	grades   repository.GradeRepository
	students repository.StudentRepository
	logger   *zap.Logger
}

// NewGradeService creates the grade service.
func NewGradeService(grades repository.GradeRepository, students repository.StudentRepository, logger *zap.Logger) *GradeService {
	return &GradeService{
		grades:   grades,
		students: students,
		logger:   logger,
	}
}

// parseGradeValue validates the 1.0-5.0 scale.
func parseGradeValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 1.0 || v > 5.0 {
		return 0, ErrInvalidGradeValue
	}
	return v, nil
}

// deriveRemarks maps a grade value to its remarks string.
func deriveRemarks(value float64) string {
	if value <= passingGrade {
		return "Passed"
	}
	return "Failed"
}

// Create records a grade for an existing student.
func (s *GradeService) Create(ctx context.Context, req *dto.CreateGradeRequest) (*model.Grade, error) {
	value, err := parseGradeValue(req.Grade)
	if err != nil {
		return nil, err
	}
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	grade := &model.Grade{
		StudentID:   req.StudentID,
		SubjectCode: req.SubjectCode,
		SubjectName: req.SubjectName,
		Instructor:  req.Instructor,
		Grade:       req.Grade,
		Units:       req.Units,
		Semester:    req.Semester,
		Remarks:     deriveRemarks(value),
	}
	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}
	s.logger.Info("grade recorded",
		zap.String("id", grade.GradeID),
		zap.String("studentId", grade.StudentID),
		zap.String("subject", grade.SubjectCode))
	return grade, nil
}

// Get returns one grade.
func (s *GradeService) Get(ctx context.Context, id string) (*model.Grade, error) {
	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}
	return grade, nil
}

// List returns every grade record.
func (s *GradeService) List(ctx context.Context) ([]model.Grade, error) {
	return s.grades.List(ctx)
}

// ListByStudent returns the grades of one existing student, newest first.
func (s *GradeService) ListByStudent(ctx context.Context, studentID string) ([]model.Grade, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return s.grades.ListByStudent(ctx, studentID)
}

// Update applies a partial update. Changing the grade value re-derives the
// remarks.
func (s *GradeService) Update(ctx context.Context, id string, req *dto.UpdateGradeRequest) (*model.Grade, error) {
	grade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Grade != nil {
		value, err := parseGradeValue(*req.Grade)
		if err != nil {
			return nil, err
		}
		grade.Grade = *req.Grade
		grade.Remarks = deriveRemarks(value)
	}
	if req.SubjectCode != nil {
		grade.SubjectCode = *req.SubjectCode
	}
	if req.SubjectName != nil {
		grade.SubjectName = *req.SubjectName
	}
	if req.Instructor != nil {
		grade.Instructor = *req.Instructor
	}
	if req.Units != nil {
		grade.Units = *req.Units
	}
	if req.Semester != nil {
		grade.Semester = *req.Semester
	}

	if err := s.grades.Update(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// Delete removes a grade record.
func (s *GradeService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.grades.Delete(ctx, id)
}
