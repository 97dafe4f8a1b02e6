package store

import "github.com/studywiz/studywiz/internal/models"

// Registry returns the global name↔email binding registry, keyed by
// normalized email.
func (s *Store) Registry() map[string]models.RegistryEntry {
	reg := map[string]models.RegistryEntry{}
	s.loadJSON(GlobalKey(baseRegistry), &reg)
	return reg
}

func (s *Store) SaveRegistry(reg map[string]models.RegistryEntry) error {
	return s.putJSON(GlobalKey(baseRegistry), reg)
}

// CurrentUser returns the persisted login session, if any.
func (s *Store) CurrentUser() (models.Identity, bool) {
	var id models.Identity
	if !s.loadJSON(GlobalKey(baseCurrentUser), &id) {
		return models.Identity{}, false
	}
	if NormalizeOwner(id.Email) == "" {
		return models.Identity{}, false
	}
	return id, true
}

func (s *Store) SaveCurrentUser(id models.Identity) error {
	return s.putJSON(GlobalKey(baseCurrentUser), id)
}

func (s *Store) ClearCurrentUser() error {
	return s.remove(GlobalKey(baseCurrentUser))
}

// Settings returns the global preferences, falling back to defaults when
// absent or unreadable. They survive logout.
func (s *Store) Settings() models.AppSettings {
	settings := models.DefaultSettings()
	if !s.loadJSON(GlobalKey(baseSettings), &settings) {
		return models.DefaultSettings()
	}
	if settings.AutoPauseHours <= 0 {
		settings.AutoPauseHours = models.DefaultSettings().AutoPauseHours
	}
	return settings
}

func (s *Store) SaveSettings(settings models.AppSettings) error {
	return s.putJSON(GlobalKey(baseSettings), settings)
}

func (s *Store) Selection(email string) models.StudySelection {
	var sel models.StudySelection
	s.loadUserJSON(baseSelection, email, &sel)
	return sel
}

func (s *Store) SaveSelection(email string, sel models.StudySelection) error {
	return s.putUserJSON(baseSelection, email, sel)
}

func (s *Store) Studies(email string) []models.SavedStudy {
	var list []models.SavedStudy
	s.loadUserJSON(baseStudies, email, &list)
	return list
}

func (s *Store) SaveStudies(email string, list []models.SavedStudy) error {
	return s.putUserJSON(baseStudies, email, list)
}

func (s *Store) SelectedStudyID(email string) string {
	var id string
	s.loadUserJSON(baseSelectedID, email, &id)
	return id
}

func (s *Store) SaveSelectedStudyID(email, id string) error {
	if id == "" {
		return s.removeUser(baseSelectedID, email)
	}
	return s.putUserJSON(baseSelectedID, email, id)
}

func (s *Store) TimerSnapshot(email string) models.TimerSnapshot {
	snap := models.TimerSnapshot{Status: models.StatusIdle}
	if !s.loadUserJSON(baseTimer, email, &snap) || snap.Status == "" {
		return models.TimerSnapshot{Status: models.StatusIdle}
	}
	return snap
}

func (s *Store) SaveTimerSnapshot(email string, snap models.TimerSnapshot) error {
	return s.putUserJSON(baseTimer, email, snap)
}

// PendingSession returns nil when nothing is staged.
func (s *Store) PendingSession(email string) *models.PendingSession {
	var p models.PendingSession
	if !s.loadUserJSON(basePending, email, &p) {
		return nil
	}
	return &p
}

func (s *Store) SavePendingSession(email string, p *models.PendingSession) error {
	if p == nil {
		return s.removeUser(basePending, email)
	}
	return s.putUserJSON(basePending, email, p)
}

func (s *Store) Notes(email string) []models.MaterialNote {
	var list []models.MaterialNote
	s.loadUserJSON(baseNotes, email, &list)
	return list
}

func (s *Store) SaveNotes(email string, list []models.MaterialNote) error {
	return s.putUserJSON(baseNotes, email, list)
}

func (s *Store) DueRows(email string) []models.DueDateRow {
	var list []models.DueDateRow
	s.loadUserJSON(baseDueDates, email, &list)
	return list
}

func (s *Store) SaveDueRows(email string, list []models.DueDateRow) error {
	return s.putUserJSON(baseDueDates, email, list)
}
