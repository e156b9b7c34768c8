package registrar

// Load replaces the in-memory collections with the persisted ones.
// Missing files yield empty collections; a corrupt courses file is
// abandoned wholesale by the codec.
func (s *Service) Load() error {
	students, studentOrder, err := s.codec.LoadStudents()
	if err != nil {
		return err
	}
	courses, courseOrder := s.codec.LoadCourses()
	enrollments, err := s.codec.LoadEnrollments()
	if err != nil {
		return err
	}

	s.store.Seed(students, studentOrder, courses, courseOrder, enrollments)
	s.log.Info().
		Int("students", len(students)).
		Int("courses", len(courses)).
		Int("enrollments", len(enrollments)).
		Msg("Collections loaded")
	return nil
}

// SaveAll persists students, courses, and enrollments in that order,
// then records one activity line. The first failure aborts the
// remaining saves; files already written stay written — the sequence
// is not transactional across files.
func (s *Service) SaveAll() error {
	if err := s.codec.SaveStudents(s.store.StudentsInOrder()); err != nil {
		return err
	}
	if err := s.codec.SaveCourses(s.store.CoursesInOrder()); err != nil {
		return err
	}
	if err := s.codec.SaveEnrollments(s.store.Enrollments()); err != nil {
		return err
	}
	s.record("Saved and backed up data")
	return nil
}
