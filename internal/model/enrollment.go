package model

// Enrollment is the join record binding one student to one course.
// Grade is nil until recorded; once set it may be overwritten but
// never unset. At most one row exists per (StudentID, CourseCode).
type Enrollment struct {
	StudentID  int      `json:"student_id"`
	CourseCode string   `json:"course_code"`
	Grade      *float64 `json:"grade,omitempty"`
}
