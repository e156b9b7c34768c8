package response

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageFallback(t *testing.T) {
	err := New(ErrCourseFull)
	if err.Error() != "Course full." {
		t.Fatalf("expected default message, got %q", err.Error())
	}

	err = Newf(ErrNotFound, "Student not found.")
	if err.Error() != "Student not found." {
		t.Fatalf("expected explicit message, got %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrAlreadyEnrolled)); got != ErrAlreadyEnrolled {
		t.Fatalf("expected ALREADY_ENROLLED, got %q", got)
	}

	wrapped := fmt.Errorf("enroll: %w", New(ErrMissingPrerequisite))
	if got := CodeOf(wrapped); got != ErrMissingPrerequisite {
		t.Fatalf("expected code through wrapping, got %q", got)
	}

	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty code for plain error, got %q", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Fatalf("expected empty code for nil, got %q", got)
	}
}
