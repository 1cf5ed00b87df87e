package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-portal/backend/internal/model"
)

// StudentRepository is the student data access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	GetByStudentNumber(ctx context.Context, number string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	ListBySection(ctx context.Context, sectionID string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
	// AssignSection sets (or clears, when sectionID is nil) the section of
	// the given students in one statement.
	AssignSection(ctx context.Context, studentIDs []string, sectionID *string) error
	Count(ctx context.Context) (int64, error)
	DistinctCourses(ctx context.Context) ([]string, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates the GORM-backed StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Section").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByStudentNumber(ctx context.Context, number string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Section").
		Where("student_number = ?", number).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Preload("Section").
		Order("last_name, first_name").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) ListBySection(ctx context.Context, sectionID string) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("last_name, first_name").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{}).Error
}

func (r *studentRepo) AssignSection(ctx context.Context, studentIDs []string, sectionID *string) error {
	return r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("student_id IN ?", studentIDs).
		Update("section_id", sectionID).Error
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&count).Error
	return count, err
}

func (r *studentRepo) DistinctCourses(ctx context.Context) ([]string, error) {
	var courses []string
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Distinct("course").
		Pluck("course", &courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
