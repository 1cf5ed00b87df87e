package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/repository"
)

var (
	// ErrSectionNotFound is returned when the referenced section row does
	// not exist.
	ErrSectionNotFound = errors.New("section not found")
	// ErrDuplicateSectionName is returned when a create or update would
	// reuse an existing section name.
	ErrDuplicateSectionName = errors.New("section name already exists")
)

// SectionService handles sections and their student membership.
type SectionService struct {
	sections repository.SectionRepository
	students repository.StudentRepository
	logger   *zap.Logger
}

// NewSectionService creates the section service.
func NewSectionService(sections repository.SectionRepository, students repository.StudentRepository, logger *zap.Logger) *SectionService {
	return &SectionService{
		sections: sections,
		students: students,
		logger:   logger,
	}
}

// Create adds a section with a unique name.
func (s *SectionService) Create(ctx context.Context, req *dto.CreateSectionRequest) (*model.Section, error) {
	existing, err := s.sections.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSectionName
	}

	section := &model.Section{
		Name:        req.Name,
		Course:      req.Course,
		YearLevel:   req.YearLevel,
		SchoolYear:  req.SchoolYear,
		Description: req.Description,
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, err
	}
	s.logger.Info("section created", zap.String("id", section.SectionID), zap.String("name", section.Name))
	return section, nil
}

// Get returns one section.
func (s *SectionService) Get(ctx context.Context, id string) (*model.Section, error) {
	section, err := s.sections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

// List returns all sections ordered by name.
func (s *SectionService) List(ctx context.Context) ([]model.Section, error) {
	return s.sections.List(ctx)
}

// Members returns the students assigned to the section.
func (s *SectionService) Members(ctx context.Context, id string) ([]dto.StudentResponse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	students, err := s.students.ListBySection(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(students), nil
}

// Update applies a partial update. A changed name must still be unique.
func (s *SectionService) Update(ctx context.Context, id string, req *dto.UpdateSectionRequest) (*model.Section, error) {
	section, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != section.Name {
		existing, err := s.sections.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateSectionName
		}
		section.Name = *req.Name
	}
	if req.Course != nil {
		section.Course = *req.Course
	}
	if req.YearLevel != nil {
		section.YearLevel = *req.YearLevel
	}
	if req.SchoolYear != nil {
		section.SchoolYear = *req.SchoolYear
	}
	if req.Description != nil {
		section.Description = *req.Description
	}

	if err := s.sections.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// Delete removes a section. Member students are detached, never deleted;
// the detach and the delete run in one transaction.
func (s *SectionService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.sections.DeleteWithMembers(ctx, id); err != nil {
		return err
	}
	s.logger.Info("section deleted", zap.String("id", id))
	return nil
}

// AssignStudents moves the given students into the section. Every listed
// student must exist.
func (s *SectionService) AssignStudents(ctx context.Context, id string, req *dto.AssignStudentsRequest) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	for _, studentID := range req.StudentIDs {
		if _, err := s.students.GetByID(ctx, studentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}
	}
	return s.students.AssignSection(ctx, req.StudentIDs, &id)
}

// RemoveStudent detaches one student from the section.
func (s *SectionService) RemoveStudent(ctx context.Context, id, studentID string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	if student.SectionID == nil || *student.SectionID != id {
		return ErrStudentNotFound
	}
	return s.students.AssignSection(ctx, []string{studentID}, nil)
}
