package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-portal/backend/config"
	"campus-portal/backend/internal/api/handler"
	"campus-portal/backend/internal/api/middleware"
	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/service"
	"campus-portal/backend/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// New builds the Gin engine with the full route tree. cache may be nil.
func New(cfg *config.Config, h *handler.Handler, svc *service.Service, cache *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(&cfg.Server.CORS))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public routes. The announcement board is readable without a session;
	// writes stay behind the admin group below.
	api.POST("/auth/login",
		middleware.LoginRateLimit(cache, logger, 10, time.Minute),
		h.Auth.Login)
	api.GET("/admin/announcements", h.Announcement.List)
	api.GET("/admin/announcements/:id", h.Announcement.Get)

	api.POST("/auth/logout", middleware.SessionAuth(svc.Session), h.Auth.Logout)

	// Student self-service.
	student := api.Group("/student",
		middleware.SessionAuth(svc.Session),
		middleware.RoleAuth(model.RoleStudent))
	{
		student.GET("/profile", h.Student.Profile)
		student.GET("/grades", h.Grade.MyGrades)
		student.GET("/stats", h.Stats.StudentStats)
		student.GET("/schedule", h.Stats.StudentSchedule)
		student.GET("/schedule.ics", h.Export.ScheduleICS)
		student.GET("/announcements", h.Announcement.List)
		student.POST("/change-password", h.Auth.ChangePassword)
		student.PUT("/account", h.Auth.UpdateStudentAccount)
	}

	// Admin management surface.
	admin := api.Group("/admin",
		middleware.SessionAuth(svc.Session),
		middleware.RoleAuth(model.RoleAdmin))
	{
		admin.PUT("/account", h.Auth.UpdateAdminAccount)
		admin.GET("/stats", h.Stats.AdminStats)

		admin.POST("/students", h.Student.Create)
		admin.GET("/students", h.Student.List)
		admin.GET("/students/:id", h.Student.Get)
		admin.PUT("/students/:id", h.Student.Update)
		admin.DELETE("/students/:id", h.Student.Delete)

		admin.POST("/sections", h.Section.Create)
		admin.GET("/sections", h.Section.List)
		admin.GET("/sections/:id", h.Section.Get)
		admin.PUT("/sections/:id", h.Section.Update)
		admin.DELETE("/sections/:id", h.Section.Delete)
		admin.GET("/sections/:id/students", h.Section.Members)
		admin.POST("/sections/:id/assign", h.Section.AssignStudents)
		admin.DELETE("/sections/:id/students/:studentId", h.Section.RemoveStudent)

		admin.POST("/grades", h.Grade.Create)
		admin.GET("/grades", h.Grade.List)
		admin.GET("/grades/:id", h.Grade.Get)
		admin.PUT("/grades/:id", h.Grade.Update)
		admin.DELETE("/grades/:id", h.Grade.Delete)

		admin.POST("/schedule", h.Schedule.Create)
		admin.GET("/schedule", h.Schedule.List)
		admin.GET("/schedule/:id", h.Schedule.Get)
		admin.PUT("/schedule/:id", h.Schedule.Update)
		admin.DELETE("/schedule/:id", h.Schedule.Delete)

		admin.POST("/announcements", h.Announcement.Create)
		admin.PUT("/announcements/:id", h.Announcement.Update)
		admin.DELETE("/announcements/:id", h.Announcement.Delete)

		admin.GET("/export/students", h.Export.Students)
		admin.GET("/export/grades", h.Export.Grades)
	}

	return r
}
