package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campus-portal/backend/internal/repository"
)

// ExportService renders portal data into downloadable formats: xlsx sheets
// for the admin side and an iCalendar feed of the student's derived
// schedule.
type ExportService struct {
	students repository.StudentRepository
	grades   repository.GradeRepository
	stats    *StatsService
	logger   *zap.Logger
}

// NewExportService creates the export service.
func NewExportService(students repository.StudentRepository, grades repository.GradeRepository, stats *StatsService, logger *zap.Logger) *ExportService {
	return &ExportService{
		students: students,
		grades:   grades,
		stats:    stats,
		logger:   logger,
	}
}

// ExportStudents renders the full roster as an xlsx workbook.
func (s *ExportService) ExportStudents(ctx context.Context) ([]byte, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Students"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student ID", "Last Name", "First Name", "Course", "Year Level", "Section", "Email", "Contact", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, st := range students {
		sectionName := ""
		if st.Section != nil {
			sectionName = st.Section.Name
		}
		values := []interface{}{
			st.StudentNumber, st.LastName, st.FirstName, st.Course,
			st.YearLevel, sectionName, st.Email, st.ContactNumber, st.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing students workbook: %w", err)
	}
	s.logger.Info("students exported", zap.Int("count", len(students)))
	return buf.Bytes(), nil
}

// ExportGrades renders one student's grade records as an xlsx workbook.
func (s *ExportService) ExportGrades(ctx context.Context, studentID string) ([]byte, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, ErrStudentNotFound
	}
	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Grades"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Student")
	f.SetCellValue(sheet, "B1", fmt.Sprintf("%s, %s (%s)", student.LastName, student.FirstName, student.StudentNumber))

	headers := []string{"Subject Code", "Subject Name", "Instructor", "Grade", "Units", "Semester", "Remarks"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	for row, g := range grades {
		values := []interface{}{
			g.SubjectCode, g.SubjectName, g.Instructor, g.Grade,
			g.Units, g.Semester, g.Remarks,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+4)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing grades workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// byDayCodes maps day-name prefixes to iCalendar BYDAY codes.
var byDayCodes = map[string]string{
	"mon": "MO", "tue": "TU", "wed": "WE", "thu": "TH",
	"fri": "FR", "sat": "SA", "sun": "SU",
}

var weekdayByCode = map[string]time.Weekday{
	"MO": time.Monday, "TU": time.Tuesday, "WE": time.Wednesday,
	"TH": time.Thursday, "FR": time.Friday, "SA": time.Saturday,
	"SU": time.Sunday,
}

// StudentScheduleCalendar renders the student's derived schedule as an
// iCalendar feed with weekly recurring events.
func (s *ExportService) StudentScheduleCalendar(ctx context.Context, studentID string) (string, error) {
	items, err := s.stats.StudentSchedule(ctx, studentID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Campus Portal//Schedule//EN")

	now := time.Now()
	for i := range items {
		item := &items[i]
		codes := dayCodes(item.Day)
		if len(codes) == 0 {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@campus-portal", item.ScheduleItemID))
		event.SetSummary(fmt.Sprintf("%s %s", item.SubjectCode, item.SubjectName))
		if item.Room != "" {
			event.SetLocation(item.Room)
		}
		if item.Instructor != "" {
			event.SetDescription("Instructor: " + item.Instructor)
		}

		start := nextOccurrence(now, weekdayByCode[codes[0]], item.TimeStart)
		end := nextOccurrence(now, weekdayByCode[codes[0]], item.TimeEnd)
		if end.Before(start) {
			end = start.Add(time.Hour)
		}
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.AddRrule("FREQ=WEEKLY;BYDAY=" + strings.Join(codes, ","))
	}

	return cal.Serialize(), nil
}

// dayCodes parses a comma-joined day string ("Mon,Wed" or "Monday") into
// BYDAY codes, skipping anything unrecognized.
func dayCodes(day string) []string {
	var codes []string
	for _, part := range strings.Split(day, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if len(part) < 3 {
			continue
		}
		if code, ok := byDayCodes[part[:3]]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// nextOccurrence returns the next date falling on the given weekday, at the
// given "HH:MM" clock time (midnight when the time does not parse).
func nextOccurrence(from time.Time, weekday time.Weekday, clock string) time.Time {
	days := (int(weekday) - int(from.Weekday()) + 7) % 7
	date := from.AddDate(0, 0, days)

	hour, minute := 0, 0
	if t, err := time.Parse("15:04", clock); err == nil {
		hour, minute = t.Hour(), t.Minute()
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, from.Location())
}
