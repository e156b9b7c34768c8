// Package registrar implements the enrollment workflow, grade
// recording, transcript and GPA computation, search, and analytics.
// It is the only component allowed to mutate cross-entity state.
package registrar

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusware/registrar/internal/audit"
	"github.com/campusware/registrar/internal/model"
	"github.com/campusware/registrar/internal/response"
	"github.com/campusware/registrar/internal/storage"
	"github.com/campusware/registrar/internal/store"
)

// Service handles registrar business logic over the data store.
// Inputs arrive already parsed and validated by the shell.
type Service struct {
	store *store.Store
	codec *storage.Codec
	audit *audit.Log
	log   zerolog.Logger
}

// New creates a new Service.
func New(st *store.Store, codec *storage.Codec, auditLog *audit.Log, log zerolog.Logger) *Service {
	return &Service{
		store: st,
		codec: codec,
		audit: auditLog,
		log:   log.With().Str("component", "registrar").Logger(),
	}
}

// record appends an activity line. A failing activity log never aborts
// the operation it describes.
func (s *Service) record(format string, args ...interface{}) {
	if err := s.audit.Record(fmt.Sprintf(format, args...)); err != nil {
		s.log.Warn().Err(err).Msg("Activity log write failed")
	}
}

// AddStudent registers a new student.
func (s *Service) AddStudent(req model.CreateStudentRequest) (*model.Student, error) {
	if s.store.HasStudent(req.ID) {
		return nil, response.Newf(response.ErrAlreadyExists, "Student already exists.")
	}
	s.store.PutStudent(model.Student{
		ID:   req.ID,
		Name: req.Name,
		Year: req.Year,
		GPA:  req.GPA,
	})
	s.record("Added student %d", req.ID)
	st, _ := s.store.Student(req.ID)
	return st, nil
}

// AddCourse adds a new course with an empty roster. Prerequisite codes
// are stored verbatim, without existence validation.
func (s *Service) AddCourse(req model.CreateCourseRequest) (*model.Course, error) {
	if s.store.HasCourse(req.Code) {
		return nil, response.Newf(response.ErrAlreadyExists, "Course already exists.")
	}
	prereqs := append([]string{}, req.Prereqs...)
	s.store.PutCourse(model.Course{
		Code:     req.Code,
		Title:    req.Title,
		Credits:  req.Credits,
		Capacity: req.Capacity,
		Prereqs:  prereqs,
	})
	s.record("Added course %s", req.Code)
	c, _ := s.store.Course(req.Code)
	return c, nil
}

// Enroll enrolls a student in a course. The checks run in a fixed
// order and the first failure wins: unknown student or course, course
// at capacity, duplicate pair, then missing prerequisite. A
// prerequisite is satisfied by any enrollment row for its code,
// in-progress included; no passing grade is required.
func (s *Service) Enroll(studentID int, courseCode string) error {
	if !s.store.HasStudent(studentID) || !s.store.HasCourse(courseCode) {
		return response.Newf(response.ErrNotFound, "Invalid student or course.")
	}
	course, _ := s.store.Course(courseCode)
	if course.EnrolledCount() >= course.Capacity {
		return response.New(response.ErrCourseFull)
	}
	if s.store.HasEnrollmentFor(studentID, courseCode) {
		return response.New(response.ErrAlreadyEnrolled)
	}
	for _, pre := range course.Prereqs {
		if !s.store.HasEnrollmentFor(studentID, pre) {
			return response.New(response.ErrMissingPrerequisite)
		}
	}
	s.store.Enroll(studentID, courseCode)
	s.record("Enrolled %d in %s", studentID, courseCode)
	return nil
}

// RecordGrade sets the grade on the unique enrollment row for the
// pair. Repeatable: a later call overwrites the earlier value.
func (s *Service) RecordGrade(studentID int, courseCode string, grade float64) error {
	e, ok := s.store.FindEnrollment(studentID, courseCode)
	if !ok {
		return response.Newf(response.ErrNotFound, "Enrollment not found.")
	}
	e.Grade = &grade
	s.record("Updated grade for %d in %s", studentID, courseCode)
	return nil
}
