package registrar

import (
	"sort"

	"github.com/campusware/registrar/internal/model"
)

// TopStudentsByGPA returns all students sorted descending by recorded
// GPA, truncated to n. The sort is stable: ties keep insertion order.
func (s *Service) TopStudentsByGPA(n int) []*model.Student {
	students := s.store.StudentsInOrder()
	out := make([]*model.Student, len(students))
	copy(out, students)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GPA > out[j].GPA
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// FillRate is one course's roster size as a percentage of capacity.
// Warning marks a course strictly above 90%.
type FillRate struct {
	Percent float64
	Warning bool
}

// FillRates reports the fill rate per course. A zero-capacity course
// is reported as 100% with the warning set: the capacity check rejects
// every enrollment against it, so it is full by definition.
func (s *Service) FillRates() map[string]FillRate {
	out := make(map[string]FillRate)
	for _, c := range s.store.CoursesInOrder() {
		var pct float64
		if c.Capacity == 0 {
			pct = 100
		} else {
			pct = float64(c.EnrolledCount()) / float64(c.Capacity) * 100
		}
		out[c.Code] = FillRate{Percent: pct, Warning: pct > 90}
	}
	return out
}

// AverageGradePerCourse returns the mean of recorded grades per course
// code. Courses without a single graded enrollment are omitted.
func (s *Service) AverageGradePerCourse() map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range s.store.Enrollments() {
		if e.Grade == nil {
			continue
		}
		sums[e.CourseCode] += *e.Grade
		counts[e.CourseCode]++
	}

	out := make(map[string]float64, len(sums))
	for code, sum := range sums {
		out[code] = sum / float64(counts[code])
	}
	return out
}
