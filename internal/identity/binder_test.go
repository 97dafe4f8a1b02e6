package identity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studywiz/studywiz/internal/db"
	"github.com/studywiz/studywiz/internal/models"
	"github.com/studywiz/studywiz/internal/store"
)

func newTestBinder(t *testing.T) (*Binder, *store.Store) {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	st := store.New(gdb)
	return NewBinder(st), st
}

func TestFirstLoginRegisters(t *testing.T) {
	b, st := newTestBinder(t)

	id, err := b.Login("Ada", " ADA@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, "ada@x.com", id.Email, "email is normalized")

	reg := st.Registry()
	require.Contains(t, reg, "ada@x.com")
	assert.Equal(t, "Ada", reg["ada@x.com"].Name)
	assert.NotZero(t, reg["ada@x.com"].CreatedAt)
}

func TestReLoginKeepsCallerCasing(t *testing.T) {
	b, st := newTestBinder(t)

	_, err := b.Login("Ada", "ada@x.com")
	require.NoError(t, err)

	// Name comparison is case-insensitive; the session keeps the new casing
	// while the registry keeps the original binding.
	id, err := b.Login("ADA", "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ADA", id.Name)
	assert.Equal(t, "Ada", st.Registry()["ada@x.com"].Name)
}

func TestDifferentNameForBoundEmailRefused(t *testing.T) {
	b, _ := newTestBinder(t)

	_, err := b.Login("Ada", "ada@x.com")
	require.NoError(t, err)

	_, err = b.Login("Grace", "ada@x.com")
	assert.ErrorIs(t, err, models.ErrNameMismatch)

	// The session stays on the last successful login.
	id, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, "Ada", id.Name)
}

func TestSameNameDifferentEmailsAreIndependent(t *testing.T) {
	b, _ := newTestBinder(t)

	_, err := b.Login("Ada", "ada@x.com")
	require.NoError(t, err)
	_, err = b.Login("Ada", "ada@work.com")
	assert.NoError(t, err, "the binding is per email, not per name")
}

func TestLoginValidation(t *testing.T) {
	b, _ := newTestBinder(t)

	for _, tc := range []struct{ name, email string }{
		{"", "ada@x.com"},
		{"   ", "ada@x.com"},
		{"Ada", ""},
		{"Ada", "   "},
		{"Ada", "not-an-email"},
		{"Ada", "missing-dot@host"},
	} {
		_, err := b.Login(tc.name, tc.email)
		assert.ErrorIs(t, err, models.ErrEmptyField, "name=%q email=%q", tc.name, tc.email)
	}

	_, ok := b.Current()
	assert.False(t, ok, "failed logins must not create a session")
}

func TestLogoutClearsSession(t *testing.T) {
	b, st := newTestBinder(t)

	_, err := b.Login("Ada", "ada@x.com")
	require.NoError(t, err)
	require.NoError(t, b.Logout())

	_, ok := b.Current()
	assert.False(t, ok)
	assert.Contains(t, st.Registry(), "ada@x.com", "logout keeps the registry binding")
}

func TestCurrentRestoresPersistedSession(t *testing.T) {
	b, st := newTestBinder(t)

	_, err := b.Login("Ada", "ada@x.com")
	require.NoError(t, err)

	// A fresh binder over the same store sees the session.
	b2 := NewBinder(st)
	id, ok := b2.Current()
	require.True(t, ok)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, "ada@x.com", id.Email)
}

func TestCurrentRefusesSessionMismatchingRegistry(t *testing.T) {
	b, st := newTestBinder(t)

	_, err := b.Login("Ada", "ada@x.com")
	require.NoError(t, err)

	// A tampered session whose name no longer matches the binding is
	// refused and cleared.
	require.NoError(t, st.SaveCurrentUser(models.Identity{Name: "Grace", Email: "ada@x.com"}))
	_, ok := b.Current()
	assert.False(t, ok)
	_, ok = st.CurrentUser()
	assert.False(t, ok, "the invalid session is cleared")
}
