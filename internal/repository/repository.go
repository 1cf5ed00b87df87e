package repository

import "gorm.io/gorm"

// Repository aggregates all entity repositories.
type Repository struct {
	AdminUser    AdminUserRepository
	Student      StudentRepository
	Section      SectionRepository
	Grade        GradeRepository
	ScheduleItem ScheduleItemRepository
	Announcement AnnouncementRepository
	Session      SessionRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		AdminUser:    NewAdminUserRepo(db),
		Student:      NewStudentRepo(db),
		Section:      NewSectionRepo(db),
		Grade:        NewGradeRepo(db),
		ScheduleItem: NewScheduleItemRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Session:      NewSessionRepo(db),
	}
}
