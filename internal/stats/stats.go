// Package stats keeps the rolling session log used for aggregate time
// reporting. It is append-only and independent of the saved study history.
package stats

import (
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studywiz/studywiz/internal/models"
	"github.com/studywiz/studywiz/internal/store"
)

type Service struct {
	db *gorm.DB

	mu       sync.Mutex
	onChange []func(ownerKey string)
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Append records a finished session for the owner. Guest appends no-op.
func (s *Service) Append(ownerKey string, durationSeconds int, createdAt int64) error {
	owner := store.NormalizeOwner(ownerKey)
	if owner == "" {
		return nil
	}
	entry := models.SessionLogEntry{
		ID:              uuid.NewString(),
		OwnerKey:        owner,
		CreatedAt:       createdAt,
		DurationSeconds: durationSeconds,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return err
	}
	s.fireChange(owner)
	return nil
}

// List returns the owner's log entries, newest first.
func (s *Service) List(ownerKey string) ([]models.SessionLogEntry, error) {
	owner := store.NormalizeOwner(ownerKey)
	if owner == "" {
		return nil, nil
	}
	var entries []models.SessionLogEntry
	err := s.db.Where("owner_key = ?", owner).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes the owner's whole log.
func (s *Service) Clear(ownerKey string) error {
	owner := store.NormalizeOwner(ownerKey)
	if owner == "" {
		return nil
	}
	if err := s.db.Delete(&models.SessionLogEntry{}, "owner_key = ?", owner).Error; err != nil {
		return err
	}
	s.fireChange(owner)
	return nil
}

// OnChange registers a callback fired whenever an owner's log changes, so
// reporting views can refresh without polling.
func (s *Service) OnChange(fn func(ownerKey string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *Service) fireChange(ownerKey string) {
	s.mu.Lock()
	callbacks := make([]func(string), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn(ownerKey)
	}
}
