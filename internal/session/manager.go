// Package session implements the study session lifecycle: the timer state
// machine, the pending-session hand-off and the commit into saved history.
package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studywiz/studywiz/internal/history"
	"github.com/studywiz/studywiz/internal/identity"
	"github.com/studywiz/studywiz/internal/models"
	"github.com/studywiz/studywiz/internal/store"
)

// MinSessionSeconds is the shortest session worth keeping. Anything below is
// treated as an accidental tap and discarded on save.
const MinSessionSeconds = 5

const tickInterval = time.Second

// StatsAppender mirrors the statistics collaborator. Appending is best
// effort: a failure never rolls back a saved study.
type StatsAppender interface {
	Append(ownerKey string, durationSeconds int, createdAt int64) error
}

// Notifier fires a user-visible alert. Delivery may be blocked silently.
type Notifier interface {
	Notify(title, body string)
}

// Manager owns the per-login study state: the draft selection, the saved
// study history view, the timer and the pending session. All per-user reads
// and writes go through the store with the bound identity, so switching
// identities can never touch another user's records.
type Manager struct {
	mu sync.Mutex

	store    *store.Store
	binder   *identity.Binder
	sched    Scheduler
	stats    StatsAppender
	notifier Notifier
	log      *zap.Logger

	now   func() time.Time
	newID func() string

	user      *models.Identity
	selection models.StudySelection
	history   history.History
	settings  models.AppSettings

	status  string
	elapsed int
	pending *models.PendingSession

	cancelTick func()
	onSaved    []func(models.SavedStudy)
}

// New builds a manager and rehydrates the view of the persisted login
// session, if one is still valid.
func New(st *store.Store, binder *identity.Binder, stats StatsAppender, notifier Notifier, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		store:    st,
		binder:   binder,
		sched:    TimerScheduler{},
		stats:    stats,
		notifier: notifier,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
		status:   models.StatusIdle,
		settings: st.Settings(),
	}
	if id, ok := binder.Current(); ok {
		m.bindLocked(id)
	}
	return m
}

// SetScheduler swaps the tick scheduler. Must be called before Start.
func (m *Manager) SetScheduler(s Scheduler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sched = s
}

// bindLocked loads the user-scoped view from storage.
func (m *Manager) bindLocked(id models.Identity) {
	m.user = &id
	m.selection = m.store.Selection(id.Email)
	m.history = history.History{
		Studies:    m.store.Studies(id.Email),
		SelectedID: m.store.SelectedStudyID(id.Email),
	}
	snap := m.store.TimerSnapshot(id.Email)
	m.status = snap.Status
	m.elapsed = snap.ElapsedSeconds
	m.pending = m.store.PendingSession(id.Email)
	m.log.Debug("user view rehydrated",
		zap.String("owner", id.Email),
		zap.String("status", m.status),
		zap.Int("studies", len(m.history.Studies)),
	)
}

// Login binds an identity and rehydrates that user's persisted state.
func (m *Manager) Login(name, email string) (models.Identity, error) {
	id, err := m.binder.Login(name, email)
	if err != nil {
		return models.Identity{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTickLocked()
	m.bindLocked(id)
	return id, nil
}

// Logout cancels any pending tick, drops the in-memory view back to empty
// defaults and clears the login session. Persisted per-user records and the
// global settings are untouched.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.stopTickLocked()
	m.user = nil
	m.selection = models.StudySelection{}
	m.history = history.History{}
	m.status = models.StatusIdle
	m.elapsed = 0
	m.pending = nil
	m.mu.Unlock()
	return m.binder.Logout()
}

// User returns the bound identity.
func (m *Manager) User() (models.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.Identity{}, false
	}
	return *m.user, true
}

// Selection returns the current draft.
func (m *Manager) Selection() models.StudySelection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selection
}

// SetSelection replaces the draft and persists it for the bound user.
func (m *Manager) SetSelection(sel models.StudySelection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = sel
	m.persistSelectionLocked()
}

// ResetSelection clears the draft and the selection pointer.
func (m *Manager) ResetSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = models.StudySelection{}
	m.history.SelectedID = ""
	m.persistSelectionLocked()
	m.persistHistoryLocked()
}

// SaveSelection validates the draft and stores it as a plan-only study
// (no duration yet), which becomes the selected record.
func (m *Manager) SaveSelection() (models.SavedStudy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.SavedStudy{}, models.ErrLoginRequired
	}
	if err := m.selection.Validate(); err != nil {
		return models.SavedStudy{}, err
	}
	saved := models.SavedStudy{
		ID:        m.newID(),
		CreatedAt: m.now().UnixMilli(),
		Selection: m.selection,
		Summary:   m.selection.Summary(),
	}
	m.history.Prepend(saved)
	m.history.SelectedID = saved.ID
	m.persistHistoryLocked()
	m.log.Debug("plan saved", zap.String("id", saved.ID), zap.String("summary", saved.Summary))
	return saved, nil
}

// Studies returns the saved study history, newest first.
func (m *Manager) Studies() []models.SavedStudy {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.SavedStudy, len(m.history.Studies))
	copy(out, m.history.Studies)
	return out
}

// SelectedStudyID returns the id of the currently selected study, if any.
func (m *Manager) SelectedStudyID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.SelectedID
}

// SelectStudy marks a study as selected. No-op when the id is absent.
func (m *Manager) SelectStudy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history.Select(id)
	m.persistHistoryLocked()
}

// RemoveStudy deletes a study, clearing the selection pointer if it pointed
// at the removed record.
func (m *Manager) RemoveStudy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history.Remove(id)
	m.persistHistoryLocked()
}

// StudyAgain loads a saved study's selection back into the draft and selects
// it, so a timer can start against a previous configuration.
func (m *Manager) StudyAgain(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.history.Get(id)
	if !ok {
		return models.ErrStudyNotFound
	}
	m.selection = s.Selection
	m.history.Select(id)
	m.persistSelectionLocked()
	m.persistHistoryLocked()
	return nil
}

// Status returns the timer status and elapsed seconds.
func (m *Manager) Status() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status, m.elapsed
}

// Start begins or resumes the timer. Starting fresh (from idle or stopped)
// zeroes elapsed time; resuming from paused preserves it.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.ErrLoginRequired
	}
	if m.pending != nil {
		return models.ErrPendingSessionExists
	}
	if m.status == models.StatusIdle || m.status == models.StatusStopped {
		m.elapsed = 0
	}
	m.setStatusLocked(models.StatusRunning)
	m.scheduleTickLocked()
	m.persistTimerLocked()
	return nil
}

// Pause suspends a running timer, preserving elapsed time. No-op otherwise.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != models.StatusRunning {
		return
	}
	m.stopTickLocked()
	m.setStatusLocked(models.StatusPaused)
	m.persistTimerLocked()
}

// Stop ends a running or paused timer and stages the result as a pending
// session against a snapshot of the current selection. No-op otherwise.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status != models.StatusRunning && m.status != models.StatusPaused {
		return
	}
	m.stopTickLocked()
	m.pending = &models.PendingSession{
		DurationSeconds: m.elapsed,
		EndedAt:         m.now().UnixMilli(),
		Selection:       m.selection,
	}
	m.elapsed = 0
	m.setStatusLocked(models.StatusStopped)
	m.persistTimerLocked()
	m.persistPendingLocked()
}

// Reset returns to idle from any state, zeroing elapsed time and discarding
// any pending session.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTickLocked()
	m.elapsed = 0
	m.pending = nil
	m.setStatusLocked(models.StatusIdle)
	m.persistTimerLocked()
	m.persistPendingLocked()
}

// Tick advances the timer by one second. Only meaningful while running; a
// tick that raced a state exit is ignored.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickLocked()
}

func (m *Manager) tickLocked() {
	if m.status != models.StatusRunning {
		return
	}
	m.elapsed++
	m.persistTimerLocked()

	if m.settings.AutoPauseEnabled && m.elapsed >= m.settings.AutoPauseHours*3600 {
		m.stopTickLocked()
		m.setStatusLocked(models.StatusPaused)
		m.persistTimerLocked()
		m.notifyLocked(fmt.Sprintf("Auto paused after %d hours.", m.settings.AutoPauseHours))
		return
	}

	m.scheduleTickLocked()
}

func (m *Manager) scheduleTickLocked() {
	m.stopTickLocked()
	m.cancelTick = m.sched.Schedule(tickInterval, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.cancelTick = nil
		m.tickLocked()
	})
}

func (m *Manager) stopTickLocked() {
	if m.cancelTick != nil {
		m.cancelTick()
		m.cancelTick = nil
	}
}

func (m *Manager) setStatusLocked(status string) {
	if m.status == status {
		return
	}
	m.log.Debug("timer transition", zap.String("from", m.status), zap.String("to", status))
	m.status = status
}

// PendingSession returns a copy of the staged session, or nil.
func (m *Manager) PendingSession() *models.PendingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return nil
	}
	p := *m.pending
	return &p
}

// SavePendingSession commits the staged session into history. Sessions
// shorter than MinSessionSeconds are discarded instead of committed. If a
// study is currently selected it is updated in place (keeping its existing
// summary when it has one); otherwise a new record is created. Either way the
// resulting record becomes the selected one and a statistics log entry is
// appended best effort.
func (m *Manager) SavePendingSession() (models.SavedStudy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.SavedStudy{}, models.ErrLoginRequired
	}
	if m.pending == nil {
		return models.SavedStudy{}, models.ErrNoPendingSession
	}

	p := *m.pending
	if p.DurationSeconds < MinSessionSeconds {
		m.pending = nil
		m.persistPendingLocked()
		return models.SavedStudy{}, models.ErrSessionTooShort
	}

	summary := p.Selection.Summary()
	var saved models.SavedStudy

	if id := m.history.SelectedID; id != "" {
		updated := m.history.Update(id, func(s *models.SavedStudy) {
			// A saved plan keeps its own summary once it has one.
			if strings.TrimSpace(s.Summary) == "" {
				s.Summary = summary
			}
			s.Selection = p.Selection
			s.DurationSeconds = p.DurationSeconds
			s.EndedAt = p.EndedAt
		})
		if updated {
			saved, _ = m.history.Get(id)
		}
	}

	if saved.ID == "" {
		saved = models.SavedStudy{
			ID:              m.newID(),
			CreatedAt:       p.EndedAt,
			Selection:       p.Selection,
			Summary:         summary,
			DurationSeconds: p.DurationSeconds,
			EndedAt:         p.EndedAt,
		}
		m.history.Prepend(saved)
	}

	m.history.SelectedID = saved.ID
	m.pending = nil
	m.persistHistoryLocked()
	m.persistPendingLocked()

	// Separate write, deliberately not transactional with the study commit.
	if m.stats != nil {
		if err := m.stats.Append(m.user.Email, p.DurationSeconds, p.EndedAt); err != nil {
			m.log.Warn("session log append failed", zap.Error(err))
		}
	}

	m.notifyLocked("Session saved successfully.")
	for _, fn := range m.onSaved {
		fn(saved)
	}

	m.log.Debug("session committed",
		zap.String("id", saved.ID),
		zap.Int("durationSeconds", saved.DurationSeconds),
	)
	return saved, nil
}

// DiscardPendingSession drops the staged session. Never fails.
func (m *Manager) DiscardPendingSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
	m.persistPendingLocked()
}

// OnSessionSaved registers a callback fired after each successful commit.
func (m *Manager) OnSessionSaved(fn func(models.SavedStudy)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSaved = append(m.onSaved, fn)
}

// Settings returns the global preferences.
func (m *Manager) Settings() models.AppSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// UpdateSettings applies fn to the global preferences and persists them.
func (m *Manager) UpdateSettings(fn func(*models.AppSettings)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.settings)
	if m.settings.AutoPauseHours <= 0 {
		m.settings.AutoPauseHours = models.DefaultSettings().AutoPauseHours
	}
	return m.store.SaveSettings(m.settings)
}

func (m *Manager) notifyLocked(body string) {
	if m.notifier == nil || !m.settings.NotificationsEnabled {
		return
	}
	m.notifier.Notify("StudyWiz", body)
}

// Persistence helpers. Write failures are logged, not propagated: the system
// favors availability over strict integrity for local, low-stakes data.

func (m *Manager) persistSelectionLocked() {
	if m.user == nil {
		return
	}
	if err := m.store.SaveSelection(m.user.Email, m.selection); err != nil {
		m.log.Warn("persist selection failed", zap.Error(err))
	}
}

func (m *Manager) persistHistoryLocked() {
	if m.user == nil {
		return
	}
	if err := m.store.SaveStudies(m.user.Email, m.history.Studies); err != nil {
		m.log.Warn("persist studies failed", zap.Error(err))
	}
	if err := m.store.SaveSelectedStudyID(m.user.Email, m.history.SelectedID); err != nil {
		m.log.Warn("persist selected study failed", zap.Error(err))
	}
}

func (m *Manager) persistTimerLocked() {
	if m.user == nil {
		return
	}
	snap := models.TimerSnapshot{Status: m.status, ElapsedSeconds: m.elapsed}
	if err := m.store.SaveTimerSnapshot(m.user.Email, snap); err != nil {
		m.log.Warn("persist timer failed", zap.Error(err))
	}
}

func (m *Manager) persistPendingLocked() {
	if m.user == nil {
		return
	}
	if err := m.store.SavePendingSession(m.user.Email, m.pending); err != nil {
		m.log.Warn("persist pending session failed", zap.Error(err))
	}
}
