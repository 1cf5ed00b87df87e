package service

import (
	"go.uber.org/zap"

	"campus-portal/backend/config"
	"campus-portal/backend/internal/repository"
	"campus-portal/backend/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Session      *SessionService
	Auth         *AuthService
	Student      *StudentService
	Section      *SectionService
	Grade        *GradeService
	Schedule     *ScheduleService
	Announcement *AnnouncementService
	Stats        *StatsService
	Export       *ExportService
}

// NewService wires the services. cache may be nil when Redis is disabled.
func NewService(repo *repository.Repository, cache *redis.Client, cfg *config.Config, logger *zap.Logger) *Service {
	session := NewSessionService(repo.Session, cache, cfg.Auth.SessionTTL, logger)
	stats := NewStatsService(repo.Student, repo.Grade, repo.ScheduleItem, repo.Announcement, logger)

	return &Service{
		Session:      session,
		Auth:         NewAuthService(repo.AdminUser, repo.Student, session, logger),
		Student:      NewStudentService(repo.Student, repo.Section, logger),
		Section:      NewSectionService(repo.Section, repo.Student, logger),
		Grade:        NewGradeService(repo.Grade, repo.Student, logger),
		Schedule:     NewScheduleService(repo.ScheduleItem, logger),
		Announcement: NewAnnouncementService(repo.Announcement, logger),
		Stats:        stats,
		Export:       NewExportService(repo.Student, repo.Grade, stats, logger),
	}
}
