package dto

// AdminStatsResponse is the dashboard aggregate, computed freshly from the
// current table contents on every request.
type AdminStatsResponse struct {
	TotalStudents      int64 `json:"totalStudents"`
	TotalAnnouncements int64 `json:"totalAnnouncements"`
	TotalSchedules     int64 `json:"totalSchedules"`
	TotalGrades        int64 `json:"totalGrades"`
	Courses            int64 `json:"courses"`
}

// StudentStatsResponse summarizes a student's grade set. GWA is the
// units-weighted mean on the 1.0-5.0 scale (lower is better), rounded to two
// decimals, 0 when the student has no grades.
type StudentStatsResponse struct {
	GWA             float64  `json:"gwa"`
	TotalUnits      int      `json:"totalUnits"`
	Semesters       []string `json:"semesters"`
	CurrentSemester string   `json:"currentSemester"`
}
