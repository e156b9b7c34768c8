package registrar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusware/registrar/internal/audit"
	"github.com/campusware/registrar/internal/config"
	"github.com/campusware/registrar/internal/storage"
	"github.com/campusware/registrar/internal/store"
)

func newServiceAt(t *testing.T, dir string) *Service {
	t.Helper()
	cfg := &config.Config{
		DataDir:         dir,
		BackupDir:       dir,
		StudentsFile:    "students.csv",
		CoursesFile:     "courses.json",
		EnrollmentsFile: "enrollments.csv",
		AuditFile:       "app.log",
	}
	return New(store.New(), storage.NewCodec(cfg, zerolog.Nop()), audit.New(cfg.AuditPath()), zerolog.Nop())
}

func TestSaveAllLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc := newServiceAt(t, dir)

	mustAddStudent(t, svc, 1, "Alice Smith", 1, 3.5)
	mustAddStudent(t, svc, 2, "Bob Lee", 2, 3.0)
	mustAddCourse(t, svc, "CS101", "Intro", 30)
	mustAddCourse(t, svc, "CS201", "Data Structures", 25, "CS101")
	if err := svc.Enroll(1, "CS101"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := svc.Enroll(1, "CS201"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := svc.RecordGrade(1, "CS101", 92.5); err != nil {
		t.Fatalf("grade: %v", err)
	}

	if err := svc.SaveAll(); err != nil {
		t.Fatalf("save all: %v", err)
	}

	// A fresh session over the same files sees equivalent collections.
	reloaded := newServiceAt(t, dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	st, ok := reloaded.store.Student(1)
	if !ok || st.Name != "Alice Smith" || st.GPA != 3.5 {
		t.Fatalf("student 1 not restored: %+v", st)
	}
	c, ok := reloaded.store.Course("CS201")
	if !ok {
		t.Fatal("course CS201 not restored")
	}
	if len(c.Prereqs) != 1 || c.Prereqs[0] != "CS101" {
		t.Fatalf("prereqs not restored: %v", c.Prereqs)
	}
	if _, enrolled := c.Enrolled[1]; !enrolled {
		t.Fatal("roster membership not restored as a set")
	}
	if len(reloaded.store.Enrollments()) != 2 {
		t.Fatalf("expected 2 enrollment rows, got %d", len(reloaded.store.Enrollments()))
	}
	e, ok := reloaded.store.FindEnrollment(1, "CS101")
	if !ok || e.Grade == nil || *e.Grade != 92.5 {
		t.Fatalf("grade not restored: %+v", e)
	}

	// Enrolling after a reload still keeps roster and rows in sync.
	if err := reloaded.Enroll(2, "CS101"); err != nil {
		t.Fatalf("enroll after reload: %v", err)
	}
	c, _ = reloaded.store.Course("CS101")
	if c.EnrolledCount() != 2 {
		t.Fatalf("expected roster of 2, got %d", c.EnrolledCount())
	}
}

func TestSaveAllRecordsActivityLine(t *testing.T) {
	dir := t.TempDir()
	svc := newServiceAt(t, dir)
	mustAddStudent(t, svc, 1, "Alice Smith", 1, 3.5)

	if err := svc.SaveAll(); err != nil {
		t.Fatalf("save all: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("read activity log: %v", err)
	}
	if !strings.Contains(string(raw), "Saved and backed up data") {
		t.Fatalf("expected save record in activity log, got %q", raw)
	}
	if !strings.Contains(string(raw), "Added student 1") {
		t.Fatalf("expected add record in activity log, got %q", raw)
	}
}

func TestLoadFromEmptyDirectory(t *testing.T) {
	svc := newServiceAt(t, t.TempDir())
	if err := svc.Load(); err != nil {
		t.Fatalf("load over missing files should succeed, got %v", err)
	}
	if len(svc.store.StudentsInOrder()) != 0 || len(svc.store.CoursesInOrder()) != 0 {
		t.Fatal("expected empty collections")
	}
}
