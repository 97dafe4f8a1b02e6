// Package history holds the in-memory view of a user's saved studies.
package history

import "github.com/studywiz/studywiz/internal/models"

// History is an ordered collection of saved studies, newest first, plus the
// selection pointer. It is the per-login view; persistence happens in the
// lifecycle manager through the per-user store.
type History struct {
	Studies    []models.SavedStudy
	SelectedID string
}

// Get returns the study with the given id.
func (h *History) Get(id string) (models.SavedStudy, bool) {
	for _, s := range h.Studies {
		if s.ID == id {
			return s, true
		}
	}
	return models.SavedStudy{}, false
}

// Select marks the study as selected. No-op when the id is absent.
func (h *History) Select(id string) {
	if _, ok := h.Get(id); ok {
		h.SelectedID = id
	}
}

// Prepend inserts a new study at the front.
func (h *History) Prepend(s models.SavedStudy) {
	h.Studies = append([]models.SavedStudy{s}, h.Studies...)
}

// Update applies fn to the study with the given id in place.
func (h *History) Update(id string, fn func(*models.SavedStudy)) bool {
	for i := range h.Studies {
		if h.Studies[i].ID == id {
			fn(&h.Studies[i])
			return true
		}
	}
	return false
}

// Remove deletes the study. If it was selected, the selection pointer is
// cleared; otherwise the pointer is left alone.
func (h *History) Remove(id string) {
	kept := h.Studies[:0]
	for _, s := range h.Studies {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	h.Studies = kept
	if h.SelectedID == id {
		h.SelectedID = ""
	}
}

// Completed returns the studies that have actually been run as timed
// sessions, preserving order.
func (h *History) Completed() []models.SavedStudy {
	var out []models.SavedStudy
	for _, s := range h.Studies {
		if s.Completed() {
			out = append(out, s)
		}
	}
	return out
}
