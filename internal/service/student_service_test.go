package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"campus-portal/backend/internal/dto"
	"campus-portal/backend/internal/model"
)

type studentFixture struct {
	svc      *StudentService
	students *memStudentRepo
	sections *memSectionRepo
}

func newStudentFixture(t *testing.T) *studentFixture {
	t.Helper()
	students := newMemStudentRepo()
	sections := newMemSectionRepo(students)
	return &studentFixture{
		svc:      NewStudentService(students, sections, zap.NewNop()),
		students: students,
		sections: sections,
	}
}

func validCreateStudent() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		StudentNumber: "2021-00042",
		FirstName:     "Juana",
		LastName:      "Dela Cruz",
		Course:        "BSCS",
		YearLevel:     "3",
		Password:      "secret123",
	}
}

func TestStudentService_Create(t *testing.T) {
	f := newStudentFixture(t)

	resp, err := f.svc.Create(context.Background(), validCreateStudent())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("missing row ID")
	}
	if resp.Status != "active" {
		t.Fatalf("default status = %q, want active", resp.Status)
	}
	if resp.Role != model.RoleStudent {
		t.Fatalf("role = %q", resp.Role)
	}

	stored, err := f.students.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("stored student: %v", err)
	}
	if stored.PasswordHash == "secret123" || stored.PasswordHash == "" {
		t.Fatal("password stored unhashed")
	}
}

func TestStudentService_CreateDuplicateNumber(t *testing.T) {
	f := newStudentFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, validCreateStudent()); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := f.svc.Create(ctx, validCreateStudent())
	if !errors.Is(err, ErrDuplicateStudentNumber) {
		t.Fatalf("err = %v, want ErrDuplicateStudentNumber", err)
	}
}

func TestStudentService_CreateUnknownSection(t *testing.T) {
	f := newStudentFixture(t)

	req := validCreateStudent()
	missing := "no-such-section"
	req.SectionID = &missing

	_, err := f.svc.Create(context.Background(), req)
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("err = %v, want ErrSectionNotFound", err)
	}
}

func TestStudentService_ResponseNeverCarriesPassword(t *testing.T) {
	f := newStudentFixture(t)

	resp, err := f.svc.Create(context.Background(), validCreateStudent())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	lowered := strings.ToLower(string(raw))
	if strings.Contains(lowered, "password") || strings.Contains(lowered, "hash") {
		t.Fatalf("response leaks credential material: %s", raw)
	}
}

func TestStudentService_UpdateDuplicateNumber(t *testing.T) {
	f := newStudentFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, validCreateStudent())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := validCreateStudent()
	second.StudentNumber = "2021-00043"
	other, err := f.svc.Create(ctx, second)
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	taken := first.StudentNumber
	_, err = f.svc.Update(ctx, other.ID, &dto.UpdateStudentRequest{StudentNumber: &taken})
	if !errors.Is(err, ErrDuplicateStudentNumber) {
		t.Fatalf("err = %v, want ErrDuplicateStudentNumber", err)
	}
}

func TestStudentService_GetNotFound(t *testing.T) {
	f := newStudentFixture(t)

	if _, err := f.svc.Get(context.Background(), "missing"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
	if err := f.svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("delete err = %v, want ErrStudentNotFound", err)
	}
}
