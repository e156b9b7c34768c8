// Package storage translates between the in-memory collections and
// their on-disk encodings: tabular CSV for students and enrollments,
// nested JSON for courses, plus timestamped backups of the students
// table. The three files are saved independently; there is no
// cross-file transaction.
package storage

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusware/registrar/internal/config"
)

// Codec handles load/save for the three entity collections.
type Codec struct {
	studentsPath    string
	coursesPath     string
	enrollmentsPath string
	backupDir       string
	log             zerolog.Logger
}

// NewCodec creates a Codec with paths resolved from cfg.
func NewCodec(cfg *config.Config, log zerolog.Logger) *Codec {
	return &Codec{
		studentsPath:    cfg.StudentsPath(),
		coursesPath:     cfg.CoursesPath(),
		enrollmentsPath: cfg.EnrollmentsPath(),
		backupDir:       cfg.BackupDir,
		log:             log.With().Str("component", "storage").Logger(),
	}
}

// writeAtomic writes through a uniquely named temp file in the target
// directory, then renames it over path. Individual files are replaced
// whole or not at all; a failed save never leaves a truncated file.
func (c *Codec) writeAtomic(path string, emit func(*os.File) error) error {
	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.New().String())
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := emit(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
