package models

// Entry is a persisted key-value record. User-scoped keys follow the
// "studywiz:<base>__<normalized email>" convention so records never leak
// across identities.
type Entry struct {
	Key       string `gorm:"primarykey"`
	Value     string
	UpdatedAt int64
}

// LibraryFile is an uploaded study material, scoped to its owner.
type LibraryFile struct {
	ID          string `gorm:"primarykey" json:"id"`
	OwnerKey    string `gorm:"index;not null" json:"ownerKey"`
	Name        string `json:"name"`
	ContentType string `json:"type"`
	Size        int64  `json:"size"`
	UploadedAt  int64  `json:"uploadedAt"` // unix milliseconds
	Blob        []byte `json:"-"`
}

// SessionLogEntry is an append-only statistics record, independent of
// SavedStudy and used only for aggregate time reporting.
type SessionLogEntry struct {
	ID              string `gorm:"primarykey" json:"id"`
	OwnerKey        string `gorm:"index;not null" json:"-"`
	CreatedAt       int64  `json:"createdAt"` // unix milliseconds
	DurationSeconds int    `json:"durationSeconds"`
}
