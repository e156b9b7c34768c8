// Package shell drives the interactive numbered-menu loop, translating
// raw user input into registrar calls and printing one-line results.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusware/registrar/internal/model"
	"github.com/campusware/registrar/internal/registrar"
	"github.com/campusware/registrar/internal/validator"
)

// Shell reads menu choices from in and writes prompts and results to
// out. Both are injected so scripted sessions can drive it in tests.
type Shell struct {
	svc *registrar.Service
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// New creates a Shell over the given streams.
func New(svc *registrar.Service, in io.Reader, out io.Writer, log zerolog.Logger) *Shell {
	return &Shell{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		log: log.With().Str("component", "shell").Logger(),
	}
}

// Run loops until the user exits or input ends. Both paths trigger a
// full save before returning.
func (sh *Shell) Run() error {
	for {
		sh.printMenu()
		choice, ok := sh.readLine("Enter choice: ")
		if !ok {
			return sh.exit()
		}
		switch choice {
		case "1":
			sh.listStudents()
			sh.listCourses()
		case "2":
			sh.addStudent()
		case "3":
			sh.addCourse()
		case "4":
			sh.enroll()
		case "5":
			sh.recordGrade()
		case "6":
			sh.transcript()
		case "7":
			sh.search()
		case "8":
			sh.save()
		case "9":
			sh.analytics()
		case "10":
			sh.importSpreadsheet()
		case "11":
			sh.exportReport()
		case "12":
			return sh.exit()
		default:
			fmt.Fprintln(sh.out, "Invalid choice.")
		}
	}
}

func (sh *Shell) printMenu() {
	fmt.Fprint(sh.out, `
Campus Registrar Menu:
1. List students/courses
2. Add student
3. Add course
4. Enroll student
5. Record/update grade
6. Show transcript
7. Search
8. Save & backup data
9. Analytics
10. Import students from spreadsheet
11. Export report
12. Exit
`)
}

func (sh *Shell) exit() error {
	if err := sh.svc.SaveAll(); err != nil {
		fmt.Fprintf(sh.out, "Save failed: %v\n", err)
		return err
	}
	return nil
}

// ─── Input helpers ─────────────────────────────────────────────────────

func (sh *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(sh.out, prompt)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

// readInt prompts for an integer. A parse failure prints one line and
// aborts the current action.
func (sh *Shell) readInt(prompt string) (int, bool) {
	text, ok := sh.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid number.")
		return 0, false
	}
	return n, true
}

func (sh *Shell) readFloat(prompt string) (float64, bool) {
	text, ok := sh.readLine(prompt)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid number.")
		return 0, false
	}
	return f, true
}

// printFieldErrors renders validation failures one line per field, in
// stable field order.
func (sh *Shell) printFieldErrors(fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sh.out, "%s: %s\n", name, fields[name])
	}
}

// ─── Menu actions ──────────────────────────────────────────────────────

func (sh *Shell) listStudents() {
	fmt.Fprintln(sh.out, "\n--- Students ---")
	for _, st := range sh.svc.Search("").Students {
		fmt.Fprintf(sh.out, "%d: %s (Year %d, GPA %g)\n", st.ID, st.Name, st.Year, st.GPA)
	}
}

func (sh *Shell) listCourses() {
	fmt.Fprintln(sh.out, "\n--- Courses ---")
	for _, c := range sh.svc.Search("").Courses {
		fmt.Fprintf(sh.out, "%s: %s (%d credits, cap %d)\n", c.Code, c.Title, c.Credits, c.Capacity)
	}
}

func (sh *Shell) addStudent() {
	id, ok := sh.readInt("Enter ID: ")
	if !ok {
		return
	}
	name, ok := sh.readLine("Enter name: ")
	if !ok {
		return
	}
	year, ok := sh.readInt("Enter year: ")
	if !ok {
		return
	}
	gpa, ok := sh.readFloat("Enter GPA: ")
	if !ok {
		return
	}

	req := model.CreateStudentRequest{ID: id, Name: name, Year: year, GPA: gpa}
	if fields := validator.Check(req); fields != nil {
		sh.printFieldErrors(fields)
		return
	}
	if _, err := sh.svc.AddStudent(req); err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, "Student added.")
}

func (sh *Shell) addCourse() {
	code, ok := sh.readLine("Enter course code: ")
	if !ok {
		return
	}
	title, ok := sh.readLine("Enter title: ")
	if !ok {
		return
	}
	credits, ok := sh.readInt("Credits: ")
	if !ok {
		return
	}
	capacity, ok := sh.readInt("Capacity: ")
	if !ok {
		return
	}
	raw, ok := sh.readLine("Prereqs (comma separated): ")
	if !ok {
		return
	}
	var prereqs []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			prereqs = append(prereqs, trimmed)
		}
	}

	req := model.CreateCourseRequest{
		Code:     code,
		Title:    title,
		Credits:  credits,
		Capacity: capacity,
		Prereqs:  prereqs,
	}
	if fields := validator.Check(req); fields != nil {
		sh.printFieldErrors(fields)
		return
	}
	if _, err := sh.svc.AddCourse(req); err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, "Course added.")
}

func (sh *Shell) enroll() {
	sid, ok := sh.readInt("Student ID: ")
	if !ok {
		return
	}
	code, ok := sh.readLine("Course code: ")
	if !ok {
		return
	}
	if err := sh.svc.Enroll(sid, code); err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, "Enrolled.")
}

func (sh *Shell) recordGrade() {
	sid, ok := sh.readInt("Student ID: ")
	if !ok {
		return
	}
	code, ok := sh.readLine("Course code: ")
	if !ok {
		return
	}
	grade, ok := sh.readFloat("Enter grade: ")
	if !ok {
		return
	}
	if err := sh.svc.RecordGrade(sid, code, grade); err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, "Grade recorded.")
}

func (sh *Shell) transcript() {
	sid, ok := sh.readInt("Student ID: ")
	if !ok {
		return
	}
	tr, err := sh.svc.Transcript(sid)
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintf(sh.out, "Transcript for %s:\n", tr.Student.Name)
	for _, entry := range tr.Entries {
		grade := "-"
		if entry.Grade != nil {
			grade = strconv.FormatFloat(*entry.Grade, 'f', -1, 64)
		}
		fmt.Fprintf(sh.out, "%s - %s : %s\n", entry.CourseCode, entry.CourseTitle, grade)
	}
	if tr.GPA != nil {
		fmt.Fprintf(sh.out, "Calculated GPA: %.2f\n", *tr.GPA)
	}
}

func (sh *Shell) search() {
	query, ok := sh.readLine("Enter name or course code: ")
	if !ok {
		return
	}
	res := sh.svc.Search(query)
	fmt.Fprintln(sh.out, "Students:")
	for _, st := range res.Students {
		fmt.Fprintf(sh.out, "%d: %s\n", st.ID, st.Name)
	}
	fmt.Fprintln(sh.out, "Courses:")
	for _, c := range res.Courses {
		fmt.Fprintf(sh.out, "%s: %s\n", c.Code, c.Title)
	}
}

func (sh *Shell) save() {
	if err := sh.svc.SaveAll(); err != nil {
		fmt.Fprintf(sh.out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintln(sh.out, "Data saved.")
}

func (sh *Shell) analytics() {
	fmt.Fprintln(sh.out, "1. Top N students by GPA")
	fmt.Fprintln(sh.out, "2. Course fill rates")
	fmt.Fprintln(sh.out, "3. Average grade per course")
	choice, ok := sh.readLine("Choose: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		n, ok := sh.readInt("Enter N: ")
		if !ok {
			return
		}
		for _, st := range sh.svc.TopStudentsByGPA(n) {
			fmt.Fprintf(sh.out, "%s GPA %g\n", st.Name, st.GPA)
		}
	case "2":
		rates := sh.svc.FillRates()
		for _, c := range sh.svc.Search("").Courses {
			rate := rates[c.Code]
			fmt.Fprintf(sh.out, "%s: %.1f%% full\n", c.Code, rate.Percent)
			if rate.Warning {
				fmt.Fprintln(sh.out, "Warning: over 90% capacity!")
			}
		}
	case "3":
		averages := sh.svc.AverageGradePerCourse()
		for _, c := range sh.svc.Search("").Courses {
			if avg, found := averages[c.Code]; found {
				fmt.Fprintf(sh.out, "%s: avg grade %.2f\n", c.Code, avg)
			}
		}
	default:
		fmt.Fprintln(sh.out, "Invalid choice.")
	}
}

func (sh *Shell) importSpreadsheet() {
	path, ok := sh.readLine("Spreadsheet path: ")
	if !ok {
		return
	}
	count, err := sh.svc.ImportStudentsXLSX(path)
	if err != nil {
		fmt.Fprintf(sh.out, "Import failed: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "Imported %d students.\n", count)
}

func (sh *Shell) exportReport() {
	path, ok := sh.readLine("Report path: ")
	if !ok {
		return
	}
	if err := sh.svc.ExportReportXLSX(path); err != nil {
		fmt.Fprintf(sh.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "Report written to %s.\n", path)
}
