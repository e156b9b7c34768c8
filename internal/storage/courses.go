package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/campusware/registrar/internal/model"
)

// courseRecord is the persisted shape of a course. The roster travels
// as an ordered list; in memory it is a set.
type courseRecord struct {
	Title    string   `json:"title"`
	Credits  int      `json:"credits"`
	Capacity int      `json:"capacity"`
	Prereqs  []string `json:"prereqs"`
	Enrolled []int    `json:"enrolled"`
}

// LoadCourses reads the structured courses file. Any open or decode
// failure abandons the entire load and yields an empty collection —
// deliberately stricter than the per-row recovery of the tabular
// loads. Iteration order is sorted by code, since a JSON object
// carries no order of its own.
func (c *Codec) LoadCourses() (map[string]model.Course, []string) {
	data, err := os.ReadFile(c.coursesPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.Warn().Err(err).Msg("Courses file unreadable, starting with empty collection")
		}
		return map[string]model.Course{}, nil
	}

	var records map[string]courseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.Warn().Err(err).Msg("Courses file corrupt, abandoning load")
		return map[string]model.Course{}, nil
	}

	courses := make(map[string]model.Course, len(records))
	order := make([]string, 0, len(records))
	for code, rec := range records {
		enrolled := make(map[int]struct{}, len(rec.Enrolled))
		for _, id := range rec.Enrolled {
			enrolled[id] = struct{}{}
		}
		prereqs := rec.Prereqs
		if prereqs == nil {
			prereqs = []string{}
		}
		courses[code] = model.Course{
			Code:     code,
			Title:    rec.Title,
			Credits:  rec.Credits,
			Capacity: rec.Capacity,
			Prereqs:  prereqs,
			Enrolled: enrolled,
		}
		order = append(order, code)
	}
	sort.Strings(order)
	return courses, order
}

// SaveCourses overwrites the courses file, encoding each roster set as
// a sorted list. The encode works from a read-only view: the in-memory
// model is never mutated into the persisted shape.
func (c *Codec) SaveCourses(courses []*model.Course) error {
	records := make(map[string]courseRecord, len(courses))
	for _, course := range courses {
		enrolled := make([]int, 0, len(course.Enrolled))
		for id := range course.Enrolled {
			enrolled = append(enrolled, id)
		}
		sort.Ints(enrolled)

		prereqs := course.Prereqs
		if prereqs == nil {
			prereqs = []string{}
		}
		records[course.Code] = courseRecord{
			Title:    course.Title,
			Credits:  course.Credits,
			Capacity: course.Capacity,
			Prereqs:  prereqs,
			Enrolled: enrolled,
		}
	}

	return c.writeAtomic(c.coursesPath, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	})
}
