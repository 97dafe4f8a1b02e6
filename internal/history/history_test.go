package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studywiz/studywiz/internal/models"
)

func TestPrependKeepsNewestFirst(t *testing.T) {
	var h History
	h.Prepend(models.SavedStudy{ID: "a"})
	h.Prepend(models.SavedStudy{ID: "b"})
	h.Prepend(models.SavedStudy{ID: "c"})

	require.Len(t, h.Studies, 3)
	assert.Equal(t, "c", h.Studies[0].ID)
	assert.Equal(t, "a", h.Studies[2].ID)
}

func TestSelectIgnoresUnknownID(t *testing.T) {
	h := History{Studies: []models.SavedStudy{{ID: "a"}}}

	h.Select("a")
	assert.Equal(t, "a", h.SelectedID)

	h.Select("missing")
	assert.Equal(t, "a", h.SelectedID, "unknown ids leave the pointer alone")
}

func TestUpdateInPlace(t *testing.T) {
	h := History{Studies: []models.SavedStudy{{ID: "a"}, {ID: "b"}}}

	ok := h.Update("b", func(s *models.SavedStudy) {
		s.DurationSeconds = 60
		s.EndedAt = 1
	})
	require.True(t, ok)
	assert.Equal(t, 60, h.Studies[1].DurationSeconds)
	assert.True(t, h.Studies[1].Completed())

	assert.False(t, h.Update("missing", func(*models.SavedStudy) {}))
}

func TestRemoveClearsPointerOnlyForSelected(t *testing.T) {
	h := History{
		Studies:    []models.SavedStudy{{ID: "a"}, {ID: "b"}},
		SelectedID: "b",
	}

	h.Remove("a")
	assert.Equal(t, "b", h.SelectedID)
	require.Len(t, h.Studies, 1)

	h.Remove("b")
	assert.Empty(t, h.SelectedID)
	assert.Empty(t, h.Studies)

	// Removing from an empty history is harmless.
	h.Remove("b")
}

func TestCompletedFiltersPlans(t *testing.T) {
	h := History{Studies: []models.SavedStudy{
		{ID: "done", DurationSeconds: 30, EndedAt: 1},
		{ID: "plan"},
		{ID: "done2", DurationSeconds: 10, EndedAt: 2},
	}}

	done := h.Completed()
	require.Len(t, done, 2)
	assert.Equal(t, "done", done[0].ID)
	assert.Equal(t, "done2", done[1].ID)
}
