package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DataDir         string
	BackupDir       string
	StudentsFile    string
	CoursesFile     string
	EnrollmentsFile string
	AuditFile       string
	LogLevel        string
	// LogFormat is "json" or "pretty". Empty means auto: pretty when
	// stdout is a terminal, json otherwise.
	LogFormat string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	dataDir := getEnv("REGISTRAR_DATA_DIR", ".")

	return &Config{
		DataDir:         dataDir,
		BackupDir:       getEnv("REGISTRAR_BACKUP_DIR", dataDir),
		StudentsFile:    getEnv("STUDENTS_FILE", "students.csv"),
		CoursesFile:     getEnv("COURSES_FILE", "courses.json"),
		EnrollmentsFile: getEnv("ENROLLMENTS_FILE", "enrollments.csv"),
		AuditFile:       getEnv("AUDIT_FILE", "app.log"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", ""),
	}
}

// StudentsPath returns the resolved students file path.
func (c *Config) StudentsPath() string {
	return filepath.Join(c.DataDir, c.StudentsFile)
}

// CoursesPath returns the resolved courses file path.
func (c *Config) CoursesPath() string {
	return filepath.Join(c.DataDir, c.CoursesFile)
}

// EnrollmentsPath returns the resolved enrollments file path.
func (c *Config) EnrollmentsPath() string {
	return filepath.Join(c.DataDir, c.EnrollmentsFile)
}

// AuditPath returns the resolved activity log path.
func (c *Config) AuditPath() string {
	return filepath.Join(c.DataDir, c.AuditFile)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
