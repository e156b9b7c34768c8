package shell

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusware/registrar/internal/audit"
	"github.com/campusware/registrar/internal/config"
	"github.com/campusware/registrar/internal/registrar"
	"github.com/campusware/registrar/internal/storage"
	"github.com/campusware/registrar/internal/store"
)

// runSession feeds a scripted session to the shell and returns its
// combined output. Each element is one input line.
func runSession(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	cfg := &config.Config{
		DataDir:         dir,
		BackupDir:       dir,
		StudentsFile:    "students.csv",
		CoursesFile:     "courses.json",
		EnrollmentsFile: "enrollments.csv",
		AuditFile:       "app.log",
	}
	svc := registrar.New(store.New(), storage.NewCodec(cfg, zerolog.Nop()), audit.New(cfg.AuditPath()), zerolog.Nop())
	if err := svc.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	var out bytes.Buffer
	sh := New(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, zerolog.Nop())
	if err := sh.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestScriptedEnrollmentSession(t *testing.T) {
	out := runSession(t, t.TempDir(),
		"2", "1", "Alice Smith", "1", "3.5", // add student
		"3", "CS101", "Intro to Programming", "4", "30", "", // add course
		"4", "1", "CS101", // enroll
		"5", "1", "CS101", "92.5", // record grade
		"6", "1", // transcript
		"12", // exit (saves)
	)

	for _, want := range []string{
		"Student added.",
		"Course added.",
		"Enrolled.",
		"Grade recorded.",
		"Transcript for Alice Smith:",
		"CS101 - Intro to Programming : 92.5",
		"Calculated GPA: 92.50",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExitPersistsData(t *testing.T) {
	dir := t.TempDir()
	runSession(t, dir,
		"2", "1", "Alice Smith", "1", "3.5",
		"12",
	)

	// A second session over the same directory sees the saved student.
	out := runSession(t, dir, "1", "12")
	if !strings.Contains(out, "1: Alice Smith (Year 1, GPA 3.5)") {
		t.Fatalf("expected student listed after reload:\n%s", out)
	}
}

func TestRuleViolationsPrintOneLine(t *testing.T) {
	out := runSession(t, t.TempDir(),
		"2", "1", "Alice Smith", "1", "3.5",
		"4", "1", "NOPE", // unknown course
		"5", "1", "NOPE", "90", // no enrollment row
		"12",
	)

	if !strings.Contains(out, "Invalid student or course.") {
		t.Fatalf("expected enroll failure message:\n%s", out)
	}
	if !strings.Contains(out, "Enrollment not found.") {
		t.Fatalf("expected grade failure message:\n%s", out)
	}
}

func TestInvalidMenuAndNumberInput(t *testing.T) {
	out := runSession(t, t.TempDir(),
		"99",       // unknown menu entry
		"2", "abc", // non-numeric id aborts the action
		"12",
	)

	if !strings.Contains(out, "Invalid choice.") {
		t.Fatalf("expected invalid choice message:\n%s", out)
	}
	if !strings.Contains(out, "Invalid number.") {
		t.Fatalf("expected invalid number message:\n%s", out)
	}
}

func TestValidationErrorsPrintFieldMessages(t *testing.T) {
	// Empty name fails validation before reaching the engine.
	out := runSession(t, t.TempDir(),
		"2", "1", "", "1", "3.5",
		"12",
	)

	if !strings.Contains(out, "full_name:") {
		t.Fatalf("expected field error for full_name:\n%s", out)
	}
}

func TestAnalyticsSubmenu(t *testing.T) {
	out := runSession(t, t.TempDir(),
		"2", "1", "Alice Smith", "1", "3.9",
		"2", "2", "Bob Lee", "2", "3.1",
		"3", "SEM1", "Seminar", "2", "1", "", // capacity 1
		"4", "1", "SEM1",
		"9", "1", "1", // top 1 student
		"9", "2", // fill rates
		"12",
	)

	if !strings.Contains(out, "Alice Smith GPA 3.9") {
		t.Fatalf("expected top student line:\n%s", out)
	}
	if !strings.Contains(out, "SEM1: 100.0% full") {
		t.Fatalf("expected fill rate line:\n%s", out)
	}
	if !strings.Contains(out, "Warning: over 90% capacity!") {
		t.Fatalf("expected capacity warning:\n%s", out)
	}
}

func TestEndOfInputSavesAndExits(t *testing.T) {
	dir := t.TempDir()
	// No explicit exit; the script just ends.
	runSession(t, dir, "2", "1", "Alice Smith", "1", "3.5")

	if _, err := filepath.Glob(filepath.Join(dir, "students_*.csv")); err != nil {
		t.Fatalf("glob: %v", err)
	}
	out := runSession(t, dir, "1", "12")
	if !strings.Contains(out, "Alice Smith") {
		t.Fatalf("expected data saved at end of input:\n%s", out)
	}
}
