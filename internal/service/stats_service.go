package service

import (
	"context"
	"math"
	"strconv"

	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
	"campus-portal/backend/internal/repository"
)

// StatsService computes the derived read models: dashboard counters, the
// student's grade summary and the student's enrollment-inferred schedule.
// Everything is computed fresh per request; nothing here is stored.
type StatsService struct {
	students      repository.StudentRepository
	grades        repository.GradeRepository
	scheduleItems repository.ScheduleItemRepository
	announcements repository.AnnouncementRepository
	logger        *zap.Logger
}

// NewStatsService creates the stats service.
func NewStatsService(
	students repository.StudentRepository,
	grades repository.GradeRepository,
	scheduleItems repository.ScheduleItemRepository,
	announcements repository.AnnouncementRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		students:      students,
		grades:        grades,
		scheduleItems: scheduleItems,
		announcements: announcements,
		logger:        logger,
	}
}

// AdminStats returns the admin dashboard counters.
func (s *StatsService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totalStudents, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAnnouncements, err := s.announcements.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSchedules, err := s.scheduleItems.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalGrades, err := s.grades.Count(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.students.DistinctCourses(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalStudents:      totalStudents,
		TotalAnnouncements: totalAnnouncements,
		TotalSchedules:     totalSchedules,
		TotalGrades:        totalGrades,
		Courses:            int64(len(courses)),
	}, nil
}

// StudentStats summarizes the student's grade set. GWA is the units-weighted
// mean on the 1.0-5.0 scale rounded to two decimals, 0 when the student has
// no grades. CurrentSemester is the semester of the most recent grade.
func (s *StatsService) StudentStats(ctx context.Context, studentID string) (*dto.StudentStatsResponse, error) {
	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.StudentStatsResponse{Semesters: []string{}}

	var weightedSum float64
	var totalUnits int
	seen := make(map[string]bool)

	for i := range grades {
		g := &grades[i]
		value, err := strconv.ParseFloat(g.Grade, 64)
		if err == nil {
			weightedSum += value * float64(g.Units)
			totalUnits += g.Units
		}
		if !seen[g.Semester] {
			seen[g.Semester] = true
			resp.Semesters = append(resp.Semesters, g.Semester)
		}
	}

	if totalUnits > 0 {
		resp.GWA = math.Round(weightedSum/float64(totalUnits)*100) / 100
	}
	resp.TotalUnits = totalUnits
	if len(grades) > 0 {
		// Grades arrive newest-first.
		resp.CurrentSemester = grades[0].Semester
	}
	return resp, nil
}

// StudentSchedule returns the master-schedule items whose subject codes
// match the student's grade records. A student with no grades has an empty
// schedule.
func (s *StatsService) StudentSchedule(ctx context.Context, studentID string) ([]model.ScheduleItem, error) {
	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	enrolled := make(map[string]bool, len(grades))
	for i := range grades {
		enrolled[grades[i].SubjectCode] = true
	}

	items, err := s.scheduleItems.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.ScheduleItem, 0, len(items))
	for i := range items {
		if enrolled[items[i].SubjectCode] {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}
