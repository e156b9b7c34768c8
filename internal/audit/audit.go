// Package audit maintains the append-only activity log: one
// timestamp-prefixed free-text line per mutating action.
package audit

import (
	"fmt"
	"os"
	"time"
)

// Log appends activity records to a plain-text file. The file is
// opened per record so a crash never loses already-written lines.
type Log struct {
	path string
	now  func() time.Time
}

// New creates a Log writing to path.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Record appends one timestamp-prefixed line describing a mutating action.
func (l *Log) Record(event string) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	_, writeErr := fmt.Fprintf(f, "%s - %s\n", l.now().Format(time.RFC3339), event)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("write activity log: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close activity log: %w", closeErr)
	}
	return nil
}
