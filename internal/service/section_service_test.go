package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
)

type sectionFixture struct {
	svc      *SectionService
	sections *memSectionRepo
	students *memStudentRepo
}

func newSectionFixture(t *testing.T) *sectionFixture {
	t.Helper()
	students := newMemStudentRepo()
	sections := newMemSectionRepo(students)
	return &sectionFixture{
		svc:      NewSectionService(sections, students, zap.NewNop()),
		sections: sections,
		students: students,
	}
}

func (f *sectionFixture) seedSection(t *testing.T, name string) *model.Section {
	t.Helper()
	section, err := f.svc.Create(context.Background(), &dto.CreateSectionRequest{
		Name:       name,
		Course:     "BSCS",
		YearLevel:  "3",
		SchoolYear: "2024-2025",
	})
	if err != nil {
		t.Fatalf("seeding section %q: %v", name, err)
	}
	return section
}

func (f *sectionFixture) seedStudent(t *testing.T, number string, sectionID *string) *model.Student {
	t.Helper()
	student := &model.Student{
		StudentNumber: number,
		FirstName:     "Juana",
		LastName:      "Dela Cruz",
		Course:        "BSCS",
		YearLevel:     "3",
		Status:        "active",
		SectionID:     sectionID,
		PasswordHash:  "x",
	}
	if err := f.students.Create(context.Background(), student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}
	return student
}

func TestSectionService_CreateDuplicateName(t *testing.T) {
	f := newSectionFixture(t)
	f.seedSection(t, "CS-3A")

	_, err := f.svc.Create(context.Background(), &dto.CreateSectionRequest{
		Name:       "CS-3A",
		Course:     "BSCS",
		YearLevel:  "3",
		SchoolYear: "2024-2025",
	})
	if !errors.Is(err, ErrDuplicateSectionName) {
		t.Fatalf("err = %v, want ErrDuplicateSectionName", err)
	}
}

func TestSectionService_DeleteDetachesMembers(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()

	section := f.seedSection(t, "CS-3A")
	member := f.seedStudent(t, "2021-00042", &section.SectionID)
	outsider := f.seedStudent(t, "2021-00043", nil)

	if err := f.svc.Delete(ctx, section.SectionID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// The section is gone, the students are not.
	if _, err := f.svc.Get(ctx, section.SectionID); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("section still resolves: %v", err)
	}
	got, err := f.students.GetByID(ctx, member.StudentID)
	if err != nil {
		t.Fatalf("member deleted with section: %v", err)
	}
	if got.SectionID != nil {
		t.Fatalf("member still references deleted section %q", *got.SectionID)
	}
	if _, err := f.students.GetByID(ctx, outsider.StudentID); err != nil {
		t.Fatalf("unrelated student affected: %v", err)
	}

	// A repeat delete is a 404-level error, not a silent success.
	if err := f.svc.Delete(ctx, section.SectionID); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("repeat delete err = %v, want ErrSectionNotFound", err)
	}
}

func TestSectionService_AssignAndRemoveStudents(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()

	section := f.seedSection(t, "CS-3A")
	s1 := f.seedStudent(t, "2021-00042", nil)
	s2 := f.seedStudent(t, "2021-00043", nil)

	err := f.svc.AssignStudents(ctx, section.SectionID, &dto.AssignStudentsRequest{
		StudentIDs: []string{s1.StudentID, s2.StudentID},
	})
	if err != nil {
		t.Fatalf("AssignStudents: %v", err)
	}

	members, err := f.svc.Members(ctx, section.SectionID)
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("members = %d, want 2", len(members))
	}

	if err := f.svc.RemoveStudent(ctx, section.SectionID, s1.StudentID); err != nil {
		t.Fatalf("RemoveStudent: %v", err)
	}
	members, err = f.svc.Members(ctx, section.SectionID)
	if err != nil {
		t.Fatalf("Members after removal: %v", err)
	}
	if len(members) != 1 || members[0].ID != s2.StudentID {
		t.Fatalf("members after removal = %v", members)
	}
}

func TestSectionService_AssignUnknownStudent(t *testing.T) {
	f := newSectionFixture(t)
	section := f.seedSection(t, "CS-3A")

	err := f.svc.AssignStudents(context.Background(), section.SectionID, &dto.AssignStudentsRequest{
		StudentIDs: []string{"no-such-student"},
	})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestSectionService_RemoveStudentNotInSection(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()

	section := f.seedSection(t, "CS-3A")
	other := f.seedSection(t, "CS-3B")
	student := f.seedStudent(t, "2021-00042", &other.SectionID)

	err := f.svc.RemoveStudent(ctx, section.SectionID, student.StudentID)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}
