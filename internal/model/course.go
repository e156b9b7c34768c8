package model

// Course represents a course offering. Enrolled is a derived roster
// over the enrollment rows, kept as a set for O(1) capacity checks;
// it must always match the non-withdrawn enrollment rows for the code.
type Course struct {
	Code     string
	Title    string
	Credits  int
	Capacity int
	Prereqs  []string
	Enrolled map[int]struct{}
}

// EnrolledCount returns the current roster size.
func (c *Course) EnrolledCount() int {
	return len(c.Enrolled)
}

// CreateCourseRequest is the payload for adding a new course.
// Prerequisite codes are stored verbatim; they are not checked for
// existence or cycles.
type CreateCourseRequest struct {
	Code     string   `json:"code" validate:"required,min=1,max=20"`
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Credits  int      `json:"credits" validate:"required,gt=0"`
	Capacity int      `json:"capacity" validate:"gte=0"`
	Prereqs  []string `json:"prereqs" validate:"dive,min=1"`
}
