package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-portal/backend/internal/model"
)

// In-memory repository fakes. They honor the same contracts as the GORM
// implementations, including gorm.ErrRecordNotFound on misses.

type memAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*model.AdminUser
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: make(map[string]*model.AdminUser)}
}

func (r *memAdminRepo) Create(_ context.Context, admin *model.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if admin.AdminID == "" {
		admin.AdminID = uuid.NewString()
	}
	cp := *admin
	r.admins[admin.AdminID] = &cp
	return nil
}

func (r *memAdminRepo) GetByID(_ context.Context, id string) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAdminRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAdminRepo) Update(_ context.Context, admin *model.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *admin
	r.admins[admin.AdminID] = &cp
	return nil
}

func (r *memAdminRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.admins)), nil
}

type memStudentRepo struct {
	mu       sync.Mutex
	students map[string]*model.Student
}

func newMemStudentRepo() *memStudentRepo {
	return &memStudentRepo{students: make(map[string]*model.Student)}
}

func (r *memStudentRepo) Create(_ context.Context, student *model.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if student.StudentID == "" {
		student.StudentID = uuid.NewString()
	}
	cp := *student
	r.students[student.StudentID] = &cp
	return nil
}

func (r *memStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.students[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStudentRepo) GetByStudentNumber(_ context.Context, number string) (*model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if s.StudentNumber == number {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStudentRepo) List(_ context.Context) ([]model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memStudentRepo) ListBySection(_ context.Context, sectionID string) ([]model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Student
	for _, s := range r.students {
		if s.SectionID != nil && *s.SectionID == sectionID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memStudentRepo) Update(_ context.Context, student *model.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *student
	r.students[student.StudentID] = &cp
	return nil
}

func (r *memStudentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.students, id)
	return nil
}

func (r *memStudentRepo) AssignSection(_ context.Context, studentIDs []string, sectionID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range studentIDs {
		if s, ok := r.students[id]; ok {
			if sectionID == nil {
				s.SectionID = nil
			} else {
				v := *sectionID
				s.SectionID = &v
			}
		}
	}
	return nil
}

func (r *memStudentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.students)), nil
}

func (r *memStudentRepo) DistinctCourses(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, s := range r.students {
		if !seen[s.Course] {
			seen[s.Course] = true
			out = append(out, s.Course)
		}
	}
	return out, nil
}

type memSectionRepo struct {
	mu       sync.Mutex
	sections map[string]*model.Section
	students *memStudentRepo
}

func newMemSectionRepo(students *memStudentRepo) *memSectionRepo {
	return &memSectionRepo{
		sections: make(map[string]*model.Section),
		students: students,
	}
}

func (r *memSectionRepo) Create(_ context.Context, section *model.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if section.SectionID == "" {
		section.SectionID = uuid.NewString()
	}
	cp := *section
	r.sections[section.SectionID] = &cp
	return nil
}

func (r *memSectionRepo) GetByID(_ context.Context, id string) (*model.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sections[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSectionRepo) GetByName(_ context.Context, name string) (*model.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sections {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSectionRepo) List(_ context.Context) ([]model.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Section, 0, len(r.sections))
	for _, s := range r.sections {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSectionRepo) Update(_ context.Context, section *model.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *section
	r.sections[section.SectionID] = &cp
	return nil
}

func (r *memSectionRepo) DeleteWithMembers(ctx context.Context, id string) error {
	r.students.mu.Lock()
	for _, s := range r.students.students {
		if s.SectionID != nil && *s.SectionID == id {
			s.SectionID = nil
		}
	}
	r.students.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sections, id)
	return nil
}

type memGradeRepo struct {
	mu     sync.Mutex
	grades []*model.Grade
}

func newMemGradeRepo() *memGradeRepo { return &memGradeRepo{} }

func (r *memGradeRepo) Create(_ context.Context, grade *model.Grade) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if grade.GradeID == "" {
		grade.GradeID = uuid.NewString()
	}
	grade.CreatedAt = time.Now()
	cp := *grade
	r.grades = append(r.grades, &cp)
	return nil
}

func (r *memGradeRepo) GetByID(_ context.Context, id string) (*model.Grade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.grades {
		if g.GradeID == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memGradeRepo) List(_ context.Context) ([]model.Grade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Grade, 0, len(r.grades))
	for i := len(r.grades) - 1; i >= 0; i-- {
		out = append(out, *r.grades[i])
	}
	return out, nil
}

func (r *memGradeRepo) ListByStudent(_ context.Context, studentID string) ([]model.Grade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first, matching the GORM implementation's ordering.
	var out []model.Grade
	for i := len(r.grades) - 1; i >= 0; i-- {
		if r.grades[i].StudentID == studentID {
			out = append(out, *r.grades[i])
		}
	}
	return out, nil
}

func (r *memGradeRepo) Update(_ context.Context, grade *model.Grade) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.grades {
		if g.GradeID == grade.GradeID {
			cp := *grade
			cp.CreatedAt = g.CreatedAt
			r.grades[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memGradeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.grades {
		if g.GradeID == id {
			r.grades = append(r.grades[:i], r.grades[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memGradeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.grades)), nil
}

type memScheduleRepo struct {
	mu    sync.Mutex
	items map[string]*model.ScheduleItem
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{items: make(map[string]*model.ScheduleItem)}
}

func (r *memScheduleRepo) Create(_ context.Context, item *model.ScheduleItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ScheduleItemID == "" {
		item.ScheduleItemID = uuid.NewString()
	}
	cp := *item
	r.items[item.ScheduleItemID] = &cp
	return nil
}

func (r *memScheduleRepo) GetByID(_ context.Context, id string) (*model.ScheduleItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memScheduleRepo) List(_ context.Context) ([]model.ScheduleItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ScheduleItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memScheduleRepo) Update(_ context.Context, item *model.ScheduleItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ScheduleItemID] = &cp
	return nil
}

func (r *memScheduleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memScheduleRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

type memAnnouncementRepo struct {
	mu   sync.Mutex
	list []*model.Announcement
}

func newMemAnnouncementRepo() *memAnnouncementRepo { return &memAnnouncementRepo{} }

func (r *memAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.AnnouncementID == "" {
		a.AnnouncementID = uuid.NewString()
	}
	cp := *a
	r.list = append(r.list, &cp)
	return nil
}

func (r *memAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.list {
		if a.AnnouncementID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Announcement, 0, len(r.list))
	for i := len(r.list) - 1; i >= 0; i-- {
		out = append(out, *r.list[i])
	}
	return out, nil
}

func (r *memAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.list {
		if existing.AnnouncementID == a.AnnouncementID {
			cp := *a
			r.list[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memAnnouncementRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.list {
		if a.AnnouncementID == id {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memAnnouncementRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.list)), nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *memSessionRepo) Create(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.Token] = &cp
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, token string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *memSessionRepo) DeleteExpired(_ context.Context, before int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for token, s := range r.sessions {
		if s.ExpiresAt < before {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}
