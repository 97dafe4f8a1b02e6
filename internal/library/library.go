// Package library is the file-library collaborator: a blob store where every
// operation is scoped by owner key and can never see another owner's records.
package library

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studywiz/studywiz/internal/models"
	"github.com/studywiz/studywiz/internal/store"
)

var ErrMissingOwner = errors.New("missing owner key")

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Add stores a file for the owner and returns the created record.
func (s *Service) Add(ownerKey, name, contentType string, blob []byte) (models.LibraryFile, error) {
	owner := store.NormalizeOwner(ownerKey)
	if owner == "" {
		return models.LibraryFile{}, ErrMissingOwner
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	rec := models.LibraryFile{
		ID:          uuid.NewString(),
		OwnerKey:    owner,
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(blob)),
		UploadedAt:  s.now().UnixMilli(),
		Blob:        blob,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return models.LibraryFile{}, err
	}
	return rec, nil
}

// Get returns the owner's file, or nil when it is absent or belongs to
// someone else.
func (s *Service) Get(id, ownerKey string) (*models.LibraryFile, error) {
	owner := store.NormalizeOwner(ownerKey)
	if owner == "" {
		return nil, nil
	}
	var rec models.LibraryFile
	err := s.db.First(&rec, "id = ? AND owner_key = ?", id, owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns the owner's files newest first, without blob contents.
func (s *Service) List(ownerKey string) ([]models.LibraryFile, error) {
	owner := store.NormalizeOwner(ownerKey)
	if owner == "" {
		return nil, nil
	}
	var rows []models.LibraryFile
	err := s.db.Select("id", "owner_key", "name", "content_type", "size", "uploaded_at").
		Where("owner_key = ?", owner).
		Order("uploaded_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Remove deletes the owner's file and reports whether anything was removed.
// Another owner's file behaves as absent.
func (s *Service) Remove(id, ownerKey string) (bool, error) {
	owner := store.NormalizeOwner(ownerKey)
	if owner == "" {
		return false, nil
	}
	res := s.db.Delete(&models.LibraryFile{}, "id = ? AND owner_key = ?", id, owner)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
