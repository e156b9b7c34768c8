package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/campusware/registrar/internal/model"
)

var studentsHeader = []string{"student_id", "full_name", "year", "gpa"}

// LoadStudents reads the students table. Each row parses
// independently; a row that fails type conversion is skipped, never
// fatal. A missing file yields an empty collection. Returns the
// collection plus its row order.
func (c *Codec) LoadStudents() (map[int]model.Student, []int, error) {
	f, err := os.Open(c.studentsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[int]model.Student{}, nil, nil
		}
		return nil, nil, fmt.Errorf("open students file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	students := make(map[int]model.Student)
	var order []int
	header := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.log.Debug().Err(err).Msg("Skipping unreadable students row")
			continue
		}
		if header {
			header = false
			continue
		}
		st, ok := parseStudentRow(row)
		if !ok {
			c.log.Debug().Strs("row", row).Msg("Skipping malformed students row")
			continue
		}
		if _, dup := students[st.ID]; !dup {
			order = append(order, st.ID)
		}
		students[st.ID] = st
	}
	return students, order, nil
}

func parseStudentRow(row []string) (model.Student, bool) {
	if len(row) < 4 {
		return model.Student{}, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
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

// SaveStudents overwrites the students table with header plus one row
// per student in the given order, then snapshots it into the backup
// directory.
func (c *Codec) SaveStudents(students []*model.Student) error {
	err := c.writeAtomic(c.studentsPath, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(studentsHeader); err != nil {
			return err
		}
		for _, st := range students {
			row := []string{
				strconv.Itoa(st.ID),
				st.Name,
				strconv.Itoa(st.Year),
				strconv.FormatFloat(st.GPA, 'f', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return fmt.Errorf("save students: %w", err)
	}
	return c.backupStudents()
}

// backupStudents copies the saved students table to a
// minute-granularity timestamped snapshot. Two saves within the same
// minute overwrite the same backup; the last one wins.
func (c *Codec) backupStudents() error {
	name := fmt.Sprintf("students_%s%s", time.Now().Format("200601021504"), filepath.Ext(c.studentsPath))
	dst := filepath.Join(c.backupDir, name)

	src, err := os.Open(c.studentsPath)
	if err != nil {
		return fmt.Errorf("open students file for backup: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create backup %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("write backup %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close backup %s: %w", dst, err)
	}
	c.log.Debug().Str("backup", dst).Msg("Students table backed up")
	return nil
}
