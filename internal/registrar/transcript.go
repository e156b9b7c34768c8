package registrar

import (
	"strings"

	"github.com/campusware/registrar/internal/model"
	"github.com/campusware/registrar/internal/response"
)

// TranscriptEntry is one course line on a student's transcript.
type TranscriptEntry struct {
	CourseCode  string
	CourseTitle string
	Grade       *float64
}

// Transcript lists a student's enrollments with the computed GPA: the
// arithmetic mean of recorded grades. Ungraded enrollments count in
// neither numerator nor denominator; GPA is nil when nothing is graded.
type Transcript struct {
	Student model.Student
	Entries []TranscriptEntry
	GPA     *float64
}

// Transcript builds the transcript for a student.
func (s *Service) Transcript(studentID int) (*Transcript, error) {
	st, ok := s.store.Student(studentID)
	if !ok {
		return nil, response.Newf(response.ErrNotFound, "Student not found.")
	}

	tr := &Transcript{Student: *st}
	var sum float64
	var graded int
	for _, e := range s.store.EnrollmentsForStudent(studentID) {
		title := ""
		if c, ok := s.store.Course(e.CourseCode); ok {
			title = c.Title
		}
		tr.Entries = append(tr.Entries, TranscriptEntry{
			CourseCode:  e.CourseCode,
			CourseTitle: title,
			Grade:       e.Grade,
		})
		if e.Grade != nil {
			sum += *e.Grade
			graded++
		}
	}
	if graded > 0 {
		gpa := sum / float64(graded)
		tr.GPA = &gpa
	}
	return tr, nil
}

// SearchResult holds the students and courses matching a query.
type SearchResult struct {
	Students []*model.Student
	Courses  []*model.Course
}

// Search matches the query case-insensitively as a substring of
// student full names and of course codes (not titles). An empty query
// matches everything. Results keep insertion order.
func (s *Service) Search(query string) SearchResult {
	q := strings.ToLower(query)

	var res SearchResult
	for _, st := range s.store.StudentsInOrder() {
		if strings.Contains(strings.ToLower(st.Name), q) {
			res.Students = append(res.Students, st)
		}
	}
	for _, c := range s.store.CoursesInOrder() {
		if strings.Contains(strings.ToLower(c.Code), q) {
			res.Courses = append(res.Courses, c)
		}
	}
	return res
}
