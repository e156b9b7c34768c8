package response

// ErrCode is a typed error code enum for consistent error identification.
type ErrCode string

const (
	// ─── Entity existence ──────────────────────────────────────────────
	ErrAlreadyExists ErrCode = "ALREADY_EXISTS"
	ErrNotFound      ErrCode = "NOT_FOUND"

	// ─── Enrollment rules ──────────────────────────────────────────────
	ErrCourseFull          ErrCode = "COURSE_FULL"
	ErrAlreadyEnrolled     ErrCode = "ALREADY_ENROLLED"
	ErrMissingPrerequisite ErrCode = "MISSING_PREREQUISITE"
)

// Message returns a human-readable one-line message for a given error code.
func Message(code ErrCode) string {
	switch code {
	case ErrAlreadyExists:
		return "Record already exists."
	case ErrNotFound:
		return "Record not found."
	case ErrCourseFull:
		return "Course full."
	case ErrAlreadyEnrolled:
		return "Already enrolled."
	case ErrMissingPrerequisite:
		return "Missing prerequisite."
	default:
		return "An unexpected error occurred."
	}
}
