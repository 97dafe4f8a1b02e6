package models

// Time frame options for a study plan
const (
	TimeFrame1Day   = "1 Day"
	TimeFrame1Week  = "1 Week"
	TimeFrame1Month = "1 Month"
)

// Topic modes
const (
	TopicSingle   = "Single"
	TopicMultiple = "Multiple"
)

// Priority levels
const (
	Priority1 = "Priority 1"
	Priority2 = "Priority 2"
	Priority3 = "Priority 3"
)

// Timer statuses
const (
	StatusIdle    = "idle"
	StatusRunning = "running"
	StatusPaused  = "paused"
	StatusStopped = "stopped"
)

// SavedStudy is a persisted study record: either a saved plan
// (DurationSeconds=0, EndedAt=0) or a completed timed session.
type SavedStudy struct {
	ID              string         `json:"id"`
	CreatedAt       int64          `json:"createdAt"` // unix milliseconds
	Selection       StudySelection `json:"selection"`
	Summary         string         `json:"summary"`
	DurationSeconds int            `json:"durationSeconds"`
	EndedAt         int64          `json:"endedAt"` // unix milliseconds, 0 for plans
}

// Completed reports whether the study has actually been run as a timed session.
func (s SavedStudy) Completed() bool {
	return s.DurationSeconds > 0 && s.EndedAt > 0
}

// PendingSession is an uncommitted timer result awaiting a save/discard decision.
// At most one exists per user at a time.
type PendingSession struct {
	DurationSeconds int            `json:"durationSeconds"`
	EndedAt         int64          `json:"endedAt"` // unix milliseconds
	Selection       StudySelection `json:"selection"`
}

// TimerSnapshot is the persisted view of the timer, rehydrated on login.
type TimerSnapshot struct {
	Status         string `json:"status"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

// Identity is a logged-in user: display name plus the normalized email
// that namespaces all of the user's persisted data.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegistryEntry is the permanent name↔email binding created on first login.
// The name keeps its original casing; the email is normalized.
type RegistryEntry struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

// AppSettings are global preferences that survive logout.
type AppSettings struct {
	Theme                string `json:"theme"` // dark|light
	Lang                 string `json:"lang"`  // en|fr|es
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	AutoPauseEnabled     bool   `json:"autoPauseEnabled"`
	AutoPauseHours       int    `json:"autoPauseHours"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:          "dark",
		Lang:           "en",
		AutoPauseHours: 3,
	}
}

// MaterialNote is a free-form study note on the materials page.
type MaterialNote struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// DueDateRow annotates a completed study with a due date.
type DueDateRow struct {
	StudyID   string `json:"studyId"`
	Date      string `json:"date"`
	Note      string `json:"note"`
	UpdatedAt int64  `json:"updatedAt"`
}
