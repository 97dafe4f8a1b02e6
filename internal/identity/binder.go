// Package identity binds (name, email) pairs to stable user keys. An email
// binds to exactly one name for its lifetime: first registration wins.
package identity

import (
	"strings"
	"time"

	"github.com/studywiz/studywiz/internal/models"
	"github.com/studywiz/studywiz/internal/store"
)

type Binder struct {
	store *store.Store
	now   func() time.Time
}

func NewBinder(st *store.Store) *Binder {
	return &Binder{store: st, now: time.Now}
}

// Login registers a new (name, email) binding or re-authenticates an existing
// one. The returned identity keeps the caller's name casing for the active
// session; the registry retains the original record.
func (b *Binder) Login(name, email string) (models.Identity, error) {
	rawName := strings.TrimSpace(name)
	normEmail := store.NormalizeOwner(email)

	if rawName == "" || normEmail == "" || !looksLikeEmail(normEmail) {
		return models.Identity{}, models.ErrEmptyField
	}

	reg := b.store.Registry()
	if existing, ok := reg[normEmail]; ok {
		if !strings.EqualFold(strings.TrimSpace(existing.Name), rawName) {
			return models.Identity{}, models.ErrNameMismatch
		}
	} else {
		reg[normEmail] = models.RegistryEntry{
			Name:      rawName,
			Email:     normEmail,
			CreatedAt: b.now().UnixMilli(),
		}
		if err := b.store.SaveRegistry(reg); err != nil {
			return models.Identity{}, err
		}
	}

	id := models.Identity{Name: rawName, Email: normEmail}
	if err := b.store.SaveCurrentUser(id); err != nil {
		return models.Identity{}, err
	}
	return id, nil
}

// Logout clears the login session. Persisted per-user records are untouched.
func (b *Binder) Logout() error {
	return b.store.ClearCurrentUser()
}

// Current restores the persisted login session. A session whose name no
// longer matches the registry binding is refused and cleared.
func (b *Binder) Current() (models.Identity, bool) {
	id, ok := b.store.CurrentUser()
	if !ok {
		return models.Identity{}, false
	}
	if existing, bound := b.store.Registry()[id.Email]; bound {
		if !strings.EqualFold(strings.TrimSpace(existing.Name), strings.TrimSpace(id.Name)) {
			_ = b.store.ClearCurrentUser()
			return models.Identity{}, false
		}
	}
	return id, true
}

// looksLikeEmail is the minimal syntactic check: an "@" and a ".".
func looksLikeEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
