package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studywiz/studywiz/internal/db"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return New(gdb)
}

func TestAppendAndListNewestFirst(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Append("ada@x.com", 60, 1000))
	require.NoError(t, s.Append("ada@x.com", 120, 3000))
	require.NoError(t, s.Append("ada@x.com", 30, 2000))

	entries, err := s.List("ada@x.com")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 120, entries[0].DurationSeconds)
	assert.Equal(t, 30, entries[1].DurationSeconds)
	assert.Equal(t, 60, entries[2].DurationSeconds)
}

func TestOwnerIsolation(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Append("ada@x.com", 60, 1000))
	require.NoError(t, s.Append("Bob@X.com", 90, 1000))

	ada, err := s.List("ADA@x.com")
	require.NoError(t, err)
	require.Len(t, ada, 1, "owner lookup is case-insensitive")
	assert.Equal(t, 60, ada[0].DurationSeconds)

	require.NoError(t, s.Clear("ada@x.com"))
	ada, err = s.List("ada@x.com")
	require.NoError(t, err)
	assert.Empty(t, ada)

	bob, err := s.List("bob@x.com")
	require.NoError(t, err)
	assert.Len(t, bob, 1, "clearing one owner leaves the other intact")
}

func TestGuestAppendsNoOp(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Append("", 60, 1000))
	require.NoError(t, s.Append("   ", 60, 1000))

	entries, err := s.List("")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOnChangeFires(t *testing.T) {
	s := newTestService(t)

	var owners []string
	s.OnChange(func(owner string) { owners = append(owners, owner) })

	require.NoError(t, s.Append("ada@x.com", 10, 1))
	require.NoError(t, s.Clear("ada@x.com"))
	assert.Equal(t, []string{"ada@x.com", "ada@x.com"}, owners)

	// Guest operations never fire.
	require.NoError(t, s.Append("", 10, 1))
	assert.Len(t, owners, 2)
}

func TestReportBuckets(t *testing.T) {
	s := newTestService(t)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	at := func(age time.Duration) int64 { return now.Add(-age).UnixMilli() }

	require.NoError(t, s.Append("ada@x.com", 100, at(2*time.Hour)))       // 24h
	require.NoError(t, s.Append("ada@x.com", 200, at(3*24*time.Hour)))    // 7d
	require.NoError(t, s.Append("ada@x.com", 400, at(10*24*time.Hour)))   // 8-30
	require.NoError(t, s.Append("ada@x.com", 50, at(45*24*time.Hour)))    // 31-90
	require.NoError(t, s.Append("ada@x.com", 1000, at(200*24*time.Hour))) // old

	r, err := s.Report("ada@x.com", now)
	require.NoError(t, err)

	assert.Equal(t, 300, r.WeekSeconds, "rolling week includes the last 24 hours")
	assert.Equal(t, 1750, r.AllTimeSeconds)

	require.Len(t, r.Frames, 5)
	seconds := map[string]int{}
	percent := map[string]int{}
	for _, f := range r.Frames {
		seconds[f.Key] = f.Seconds
		percent[f.Key] = f.Percent
	}
	assert.Equal(t, 100, seconds["24h"])
	assert.Equal(t, 200, seconds["7d"])
	assert.Equal(t, 400, seconds["8-30"])
	assert.Equal(t, 50, seconds["31-90"])
	assert.Equal(t, 1000, seconds["old"])

	// Percentages are relative to the largest bucket.
	assert.Equal(t, 100, percent["old"])
	assert.Equal(t, 40, percent["8-30"])
	assert.Equal(t, 10, percent["24h"])
}

func TestReportEmptyLog(t *testing.T) {
	s := newTestService(t)

	r, err := s.Report("ada@x.com", time.Now())
	require.NoError(t, err)
	assert.Zero(t, r.WeekSeconds)
	assert.Zero(t, r.AllTimeSeconds)
	require.Len(t, r.Frames, 5)
	for _, f := range r.Frames {
		assert.Zero(t, f.Seconds)
		assert.Zero(t, f.Percent)
	}
}

func TestReportNegativeDurationsClamped(t *testing.T) {
	s := newTestService(t)

	now := time.Now()
	require.NoError(t, s.Append("ada@x.com", -30, now.UnixMilli()))
	require.NoError(t, s.Append("ada@x.com", 60, now.UnixMilli()))

	r, err := s.Report("ada@x.com", now)
	require.NoError(t, err)
	assert.Equal(t, 60, r.AllTimeSeconds)
}
