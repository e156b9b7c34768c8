// Package store owns the in-memory authoritative collections:
// students, courses, and enrollments. It offers lookup and mutation
// primitives and preserves insertion order for iteration; business
// rules live in the registrar engine.
package store

import "github.com/campusware/registrar/internal/model"

// Store holds the three collections for one registry instance.
// All cross-entity mutation funnels through the registrar engine;
// the store itself performs no locking (single-threaded access).
type Store struct {
	students     map[int]*model.Student
	studentOrder []int

	courses     map[string]*model.Course
	courseOrder []string

	enrollments []*model.Enrollment
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		students: make(map[int]*model.Student),
		courses:  make(map[string]*model.Course),
	}
}

// Seed installs freshly loaded collections wholesale, replacing any
// previous contents. Order slices dictate iteration order.
func (s *Store) Seed(
	students map[int]model.Student, studentOrder []int,
	courses map[string]model.Course, courseOrder []string,
	enrollments []model.Enrollment,
) {
	s.students = make(map[int]*model.Student, len(students))
	s.studentOrder = make([]int, 0, len(studentOrder))
	for _, id := range studentOrder {
		st := students[id]
		s.students[id] = &st
		s.studentOrder = append(s.studentOrder, id)
	}

	s.courses = make(map[string]*model.Course, len(courses))
	s.courseOrder = make([]string, 0, len(courseOrder))
	for _, code := range courseOrder {
		c := courses[code]
		if c.Enrolled == nil {
			c.Enrolled = make(map[int]struct{})
		}
		s.courses[code] = &c
		s.courseOrder = append(s.courseOrder, code)
	}

	s.enrollments = make([]*model.Enrollment, 0, len(enrollments))
	for i := range enrollments {
		e := enrollments[i]
		s.enrollments = append(s.enrollments, &e)
	}
}

// HasStudent reports whether a student with the given id exists.
func (s *Store) HasStudent(id int) bool {
	_, ok := s.students[id]
	return ok
}

// HasCourse reports whether a course with the given code exists.
func (s *Store) HasCourse(code string) bool {
	_, ok := s.courses[code]
	return ok
}

// Student returns the student with the given id.
func (s *Store) Student(id int) (*model.Student, bool) {
	st, ok := s.students[id]
	return st, ok
}

// Course returns the course with the given code.
func (s *Store) Course(code string) (*model.Course, bool) {
	c, ok := s.courses[code]
	return c, ok
}

// PutStudent inserts or replaces a student record.
func (s *Store) PutStudent(st model.Student) {
	if _, ok := s.students[st.ID]; !ok {
		s.studentOrder = append(s.studentOrder, st.ID)
	}
	s.students[st.ID] = &st
}

// PutCourse inserts or replaces a course record. A nil roster is
// normalized to an empty set.
func (s *Store) PutCourse(c model.Course) {
	if c.Enrolled == nil {
		c.Enrolled = make(map[int]struct{})
	}
	if _, ok := s.courses[c.Code]; !ok {
		s.courseOrder = append(s.courseOrder, c.Code)
	}
	s.courses[c.Code] = &c
}

// StudentsInOrder returns all students in insertion order.
func (s *Store) StudentsInOrder() []*model.Student {
	out := make([]*model.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		out = append(out, s.students[id])
	}
	return out
}

// CoursesInOrder returns all courses in insertion order.
func (s *Store) CoursesInOrder() []*model.Course {
	out := make([]*model.Course, 0, len(s.courseOrder))
	for _, code := range s.courseOrder {
		out = append(out, s.courses[code])
	}
	return out
}

// Enrollments returns all enrollment rows in insertion order.
func (s *Store) Enrollments() []*model.Enrollment {
	return s.enrollments
}

// FindEnrollment returns the unique enrollment row for the
// (student, course) pair.
func (s *Store) FindEnrollment(studentID int, courseCode string) (*model.Enrollment, bool) {
	for _, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseCode == courseCode {
			return e, true
		}
	}
	return nil, false
}

// HasEnrollmentFor reports whether any enrollment row exists for the
// (student, course) pair, graded or not.
func (s *Store) HasEnrollmentFor(studentID int, courseCode string) bool {
	_, ok := s.FindEnrollment(studentID, courseCode)
	return ok
}

// EnrollmentsForStudent returns the student's enrollment rows in
// insertion order.
func (s *Store) EnrollmentsForStudent(studentID int) []*model.Enrollment {
	var out []*model.Enrollment
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

// Enroll appends a new ungraded enrollment row and adds the student to
// the course roster. Both mutations happen here so the derived roster
// can never diverge from the enrollment rows. The course must exist.
func (s *Store) Enroll(studentID int, courseCode string) {
	s.enrollments = append(s.enrollments, &model.Enrollment{
		StudentID:  studentID,
		CourseCode: courseCode,
	})
	s.courses[courseCode].Enrolled[studentID] = struct{}{}
}
