package registrar

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/campusware/registrar/internal/model"
)

// ImportStudentsXLSX registers students from the first sheet of a
// spreadsheet. Row 1 is a header; columns are id, name, year, GPA.
// Rows that fail parsing and ids already registered are skipped.
// Returns the number of students imported.
func (s *Service) ImportStudentsXLSX(path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn().Err(err).Msg("Closing spreadsheet failed")
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return 0, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	imported := 0
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		st, ok := parseSheetStudent(row)
		if !ok {
			s.log.Debug().Int("row", i+1).Msg("Skipping malformed spreadsheet row")
			continue
		}
		if s.store.HasStudent(st.ID) {
			s.log.Debug().Int("student_id", st.ID).Msg("Skipping already registered student id")
			continue
		}
		s.store.PutStudent(st)
		imported++
	}

	if imported > 0 {
		s.record("Imported %d students from %s", imported, filepath.Base(path))
	}
	return imported, nil
}

func parseSheetStudent(row []string) (model.Student, bool) {
	if len(row) < 4 {
		return model.Student{}, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil || row[1] == "" {
		return model.Student{}, false
	}
	year, err := strconv.Atoi(row[2])
	if err != nil {
		return model.Student{}, false
	}
	gpa, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return model.Student{}, false
	}
	return model.Student{ID: id, Name: row[1], Year: year, GPA: gpa}, true
}

// ExportReportXLSX writes a spreadsheet report with three sheets:
// the student roster, per-course fill rates, and per-course average
// grades.
func (s *Service) ExportReportXLSX(path string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Warn().Err(err).Msg("Closing spreadsheet failed")
		}
	}()

	const studentsSheet = "Students"
	if err := f.SetSheetName("Sheet1", studentsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, studentsSheet, 1, []interface{}{"student_id", "full_name", "year", "gpa"}); err != nil {
		return err
	}
	for i, st := range s.store.StudentsInOrder() {
		if err := setRow(f, studentsSheet, i+2, []interface{}{st.ID, st.Name, st.Year, st.GPA}); err != nil {
			return err
		}
	}

	const fillSheet = "Fill Rates"
	if _, err := f.NewSheet(fillSheet); err != nil {
		return fmt.Errorf("add sheet %s: %w", fillSheet, err)
	}
	if err := setRow(f, fillSheet, 1, []interface{}{"course_code", "percent", "warning"}); err != nil {
		return err
	}
	rates := s.FillRates()
	row := 2
	for _, c := range s.store.CoursesInOrder() {
		rate := rates[c.Code]
		if err := setRow(f, fillSheet, row, []interface{}{c.Code, rate.Percent, rate.Warning}); err != nil {
			return err
		}
		row++
	}

	const avgSheet = "Average Grades"
	if _, err := f.NewSheet(avgSheet); err != nil {
		return fmt.Errorf("add sheet %s: %w", avgSheet, err)
	}
	if err := setRow(f, avgSheet, 1, []interface{}{"course_code", "average_grade"}); err != nil {
		return err
	}
	averages := s.AverageGradePerCourse()
	row = 2
	for _, c := range s.store.CoursesInOrder() {
		avg, ok := averages[c.Code]
		if !ok {
			continue
		}
		if err := setRow(f, avgSheet, row, []interface{}{c.Code, avg}); err != nil {
			return err
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	s.record("Exported report to %s", filepath.Base(path))
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d on %s: %w", row, sheet, err)
	}
	return nil
}
