package store

import (
	"testing"

	"github.com/campusware/registrar/internal/model"
)

func TestPutStudentKeepsInsertionOrder(t *testing.T) {
	s := New()
	s.PutStudent(model.Student{ID: 3, Name: "Carol"})
	s.PutStudent(model.Student{ID: 1, Name: "Alice"})
	s.PutStudent(model.Student{ID: 2, Name: "Bob"})

	got := s.StudentsInOrder()
	if len(got) != 3 {
		t.Fatalf("expected 3 students, got %d", len(got))
	}
	want := []int{3, 1, 2}
	for i, st := range got {
		if st.ID != want[i] {
			t.Fatalf("position %d: expected id %d, got %d", i, want[i], st.ID)
		}
	}
}

func TestPutStudentReplaceDoesNotDuplicateOrder(t *testing.T) {
	s := New()
	s.PutStudent(model.Student{ID: 1, Name: "Alice"})
	s.PutStudent(model.Student{ID: 1, Name: "Alice Smith"})

	got := s.StudentsInOrder()
	if len(got) != 1 {
		t.Fatalf("expected 1 student, got %d", len(got))
	}
	if got[0].Name != "Alice Smith" {
		t.Fatalf("expected replaced name, got %q", got[0].Name)
	}
}

func TestEnrollKeepsRosterInSync(t *testing.T) {
	s := New()
	s.PutStudent(model.Student{ID: 1, Name: "Alice"})
	s.PutStudent(model.Student{ID: 2, Name: "Bob"})
	s.PutCourse(model.Course{Code: "CS101", Title: "Intro", Capacity: 10})

	s.Enroll(1, "CS101")
	s.Enroll(2, "CS101")

	course, ok := s.Course("CS101")
	if !ok {
		t.Fatal("course missing")
	}
	rows := 0
	for _, e := range s.Enrollments() {
		if e.CourseCode == "CS101" {
			rows++
		}
	}
	if course.EnrolledCount() != rows {
		t.Fatalf("roster size %d diverged from %d enrollment rows", course.EnrolledCount(), rows)
	}
	if course.EnrolledCount() != 2 {
		t.Fatalf("expected 2 enrolled, got %d", course.EnrolledCount())
	}
}

func TestEnrollStartsUngraded(t *testing.T) {
	s := New()
	s.PutStudent(model.Student{ID: 1})
	s.PutCourse(model.Course{Code: "CS101", Capacity: 5})

	s.Enroll(1, "CS101")

	e, ok := s.FindEnrollment(1, "CS101")
	if !ok {
		t.Fatal("enrollment row missing")
	}
	if e.Grade != nil {
		t.Fatalf("expected nil grade, got %v", *e.Grade)
	}
}

func TestFindEnrollmentMissing(t *testing.T) {
	s := New()
	if _, ok := s.FindEnrollment(1, "CS101"); ok {
		t.Fatal("expected no enrollment row")
	}
	if s.HasEnrollmentFor(1, "CS101") {
		t.Fatal("expected HasEnrollmentFor false")
	}
}

func TestSeedNormalizesNilRoster(t *testing.T) {
	s := New()
	students := map[int]model.Student{1: {ID: 1, Name: "Alice"}}
	courses := map[string]model.Course{"CS101": {Code: "CS101", Capacity: 5}}
	s.Seed(students, []int{1}, courses, []string{"CS101"}, nil)

	course, ok := s.Course("CS101")
	if !ok {
		t.Fatal("course missing after seed")
	}
	if course.Enrolled == nil {
		t.Fatal("expected roster set, got nil")
	}

	// The seeded copy must be independent of the caller's map values.
	s.Enroll(1, "CS101")
	if len(courses["CS101"].Enrolled) != 0 {
		t.Fatal("seed should copy course records, not alias them")
	}
}

func TestEnrollmentsForStudent(t *testing.T) {
	s := New()
	s.PutStudent(model.Student{ID: 1})
	s.PutStudent(model.Student{ID: 2})
	s.PutCourse(model.Course{Code: "CS101", Capacity: 5})
	s.PutCourse(model.Course{Code: "MATH150", Capacity: 5})

	s.Enroll(1, "CS101")
	s.Enroll(2, "CS101")
	s.Enroll(1, "MATH150")

	rows := s.EnrollmentsForStudent(1)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].CourseCode != "CS101" || rows[1].CourseCode != "MATH150" {
		t.Fatalf("unexpected order: %s, %s", rows[0].CourseCode, rows[1].CourseCode)
	}
}
