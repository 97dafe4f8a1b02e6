// Package store is the single place where per-user storage keys are derived.
// Every persisted record kind gets a typed accessor here; nothing else in the
// app touches raw keys, so ownership and namespacing are enforced once.
package store

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studywiz/studywiz/internal/models"
)

const keyPrefix = "studywiz"

// Key bases, mirrored 1:1 with the persisted record kinds.
const (
	baseRegistry    = "users_registry"
	baseCurrentUser = "user"
	baseSettings    = "settings"

	baseSelection  = "current_selection"
	baseStudies    = "saved_studies"
	baseSelectedID = "selected_study_id"
	baseTimer      = "timer_state"
	basePending    = "pending_session"
	baseNotes      = "material_notes"
	baseDueDates   = "due_dates"
)

// NormalizeOwner turns an email into the owner key that namespaces all of a
// user's persisted data.
func NormalizeOwner(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GlobalKey derives the storage key for records shared by all users.
func GlobalKey(base string) string {
	return keyPrefix + ":" + base
}

// UserKey derives the storage key for a user-scoped record.
func UserKey(base, email string) string {
	return keyPrefix + ":" + base + "__" + NormalizeOwner(email)
}

// Store persists records through a key-value entries table.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) get(key string) (string, bool) {
	var e models.Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		return "", false
	}
	return e.Value, true
}

func (s *Store) put(key, value string) error {
	e := models.Entry{Key: key, Value: value, UpdatedAt: time.Now().UnixMilli()}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&e).Error
}

func (s *Store) remove(key string) error {
	return s.db.Delete(&models.Entry{}, "key = ?", key).Error
}

// loadJSON unmarshals the stored value into out. Malformed persisted data is
// treated as absent: out is left at its fallback value and ok is false.
func (s *Store) loadJSON(key string, out any) bool {
	raw, ok := s.get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

func (s *Store) putJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.put(key, string(raw))
}

// getUser / putUser / removeUser guard the guest case: without an identity,
// user-scoped reads are empty and writes silently no-op.

func (s *Store) loadUserJSON(base, email string, out any) bool {
	if NormalizeOwner(email) == "" {
		return false
	}
	return s.loadJSON(UserKey(base, email), out)
}

func (s *Store) putUserJSON(base, email string, v any) error {
	if NormalizeOwner(email) == "" {
		return nil
	}
	return s.putJSON(UserKey(base, email), v)
}

func (s *Store) removeUser(base, email string) error {
	if NormalizeOwner(email) == "" {
		return nil
	}
	return s.remove(UserKey(base, email))
}
