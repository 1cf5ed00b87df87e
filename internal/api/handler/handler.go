package handler

import (
	"go.uber.org/zap"

	"campus-portal/backend/internal/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth         *AuthHandler
	Student      *StudentHandler
	Section      *SectionHandler
	Grade        *GradeHandler
	Schedule     *ScheduleHandler
	Announcement *AnnouncementHandler
	Stats        *StatsHandler
	Export       *ExportHandler
}

// NewHandler wires the handlers.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, logger),
		Student:      NewStudentHandler(svc.Student, logger),
		Section:      NewSectionHandler(svc.Section, logger),
		Grade:        NewGradeHandler(svc.Grade, logger),
		Schedule:     NewScheduleHandler(svc.Schedule, logger),
		Announcement: NewAnnouncementHandler(svc.Announcement, logger),
		Stats:        NewStatsHandler(svc.Stats, logger),
		Export:       NewExportHandler(svc.Export, logger),
	}
}
