package main

import (
	"fmt"

	"github.com/campusware/registrar/internal/audit"
	"github.com/campusware/registrar/internal/config"
	"github.com/campusware/registrar/internal/logger"
	"github.com/campusware/registrar/internal/model"
	"github.com/campusware/registrar/internal/registrar"
	"github.com/campusware/registrar/internal/storage"
	"github.com/campusware/registrar/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	st := store.New()
	codec := storage.NewCodec(cfg, log)
	auditLog := audit.New(cfg.AuditPath())
	svc := registrar.New(st, codec, auditLog, log)

	if err := svc.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load collections")
	}

	fmt.Println("=== Seeding Sample Data ===")

	students := []model.CreateStudentRequest{
		{ID: 1001, Name: "Alice Nguyen", Year: 2, GPA: 3.8},
		{ID: 1002, Name: "Bruno Costa", Year: 1, GPA: 3.1},
		{ID: 1003, Name: "Chen Wei", Year: 3, GPA: 3.6},
		{ID: 1004, Name: "Dara Okafor", Year: 2, GPA: 3.9},
		{ID: 1005, Name: "Elif Demir", Year: 4, GPA: 2.9},
	}
	for _, req := range students {
		if _, err := svc.AddStudent(req); err != nil {
			fmt.Printf("Skipping student %d: %v\n", req.ID, err)
		}
	}

	courses := []model.CreateCourseRequest{
		{Code: "CS101", Title: "Introduction to Programming", Credits: 4, Capacity: 30},
		{Code: "CS201", Title: "Data Structures", Credits: 4, Capacity: 25, Prereqs: []string{"CS101"}},
		{Code: "MATH150", Title: "Calculus I", Credits: 3, Capacity: 40},
		{Code: "PHYS110", Title: "Mechanics", Credits: 3, Capacity: 2},
	}
	for _, req := range courses {
		if _, err := svc.AddCourse(req); err != nil {
			fmt.Printf("Skipping course %s: %v\n", req.Code, err)
		}
	}

	enrollments := []struct {
		studentID int
		code      string
	}{
		{1001, "CS101"},
		{1001, "CS201"},
		{1002, "CS101"},
		{1003, "MATH150"},
		{1004, "CS101"},
		{1004, "PHYS110"},
	}
	for _, e := range enrollments {
		if err := svc.Enroll(e.studentID, e.code); err != nil {
			fmt.Printf("Skipping enrollment %d/%s: %v\n", e.studentID, e.code, err)
		}
	}

	if err := svc.RecordGrade(1001, "CS101", 92); err != nil {
		log.Fatal().Err(err).Msg("Failed to record grade")
	}
	if err := svc.RecordGrade(1002, "CS101", 78.5); err != nil {
		log.Fatal().Err(err).Msg("Failed to record grade")
	}

	if err := svc.SaveAll(); err != nil {
		log.Fatal().Err(err).Msg("Failed to save seeded data")
	}
	fmt.Println("Seed complete.")
}
