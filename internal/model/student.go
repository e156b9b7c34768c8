package model

// Student represents a registered student. GPA is the administratively
// recorded value carried in the students file; a transcript GPA is
// computed from recorded grades instead.
type Student struct {
	ID   int     `json:"student_id"`
	Name string  `json:"full_name"`
	Year int     `json:"year"`
	GPA  float64 `json:"gpa"`
}

// CreateStudentRequest is the payload for registering a new student.
type CreateStudentRequest struct {
	ID   int     `json:"student_id" validate:"required,gt=0"`
	Name string  `json:"full_name" validate:"required,min=1,max=100"`
	Year int     `json:"year" validate:"required,gte=1"`
	GPA  float64 `json:"gpa" validate:"gte=0"`
}
