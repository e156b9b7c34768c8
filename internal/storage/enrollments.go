package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/campusware/registrar/internal/model"
)

var enrollmentsHeader = []string{"student_id", "course_code", "grade"}

// LoadEnrollments reads the enrollments table with the same per-row
// tolerance as the students load. An empty grade cell maps to nil.
func (c *Codec) LoadEnrollments() ([]model.Enrollment, error) {
	f, err := os.Open(c.enrollmentsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open enrollments file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var enrollments []model.Enrollment
	header := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.log.Debug().Err(err).Msg("Skipping unreadable enrollments row")
			continue
		}
		if header {
			header = false
			continue
		}
		e, ok := parseEnrollmentRow(row)
		if !ok {
			c.log.Debug().Strs("row", row).Msg("Skipping malformed enrollments row")
			continue
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, nil
}

func parseEnrollmentRow(row []string) (model.Enrollment, bool) {
	if len(row) < 3 {
		return model.Enrollment{}, false
	}
	sid, err := strconv.Atoi(row[0])
	if err != nil {
		return model.Enrollment{}, false
	}
	e := model.Enrollment{StudentID: sid, CourseCode: row[1]}
	if row[2] != "" {
		grade, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return model.Enrollment{}, false
		}
		e.Grade = &grade
	}
	return e, true
}

// SaveEnrollments overwrites the enrollments table; a nil grade is
// emitted as an empty cell.
func (c *Codec) SaveEnrollments(enrollments []*model.Enrollment) error {
	err := c.writeAtomic(c.enrollmentsPath, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(enrollmentsHeader); err != nil {
			return err
		}
		for _, e := range enrollments {
			grade := ""
			if e.Grade != nil {
				grade = strconv.FormatFloat(*e.Grade, 'f', -1, 64)
			}
			row := []string{strconv.Itoa(e.StudentID), e.CourseCode, grade}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return fmt.Errorf("save enrollments: %w", err)
	}
	return nil
}
