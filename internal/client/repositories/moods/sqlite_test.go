package moods

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/migrations"
	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

var base = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func mood(id, label string, intensity int, at time.Time) *models.Mood {
	return &models.Mood{
		SyncMeta: models.SyncMeta{
			LocalID: id, UserID: "u1", RequestID: "req-" + id, Status: models.StatusPending,
			CreatedAt: at, UpdatedAt: at,
		},
		Mood: label, Intensity: intensity, RecordedAt: at,
	}
}

func TestInsertAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	m := mood("m1", "calm", 6, base)
	m.Tags = []string{"morning", "walk"}
	m.Note = "sunny"
	require.NoError(t, r.Insert(ctx, m))

	got, err := r.Get(ctx, "u1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "calm", got.Mood)
	assert.Equal(t, 6, got.Intensity)
	assert.Equal(t, []string{"morning", "walk"}, got.Tags)
	assert.Equal(t, "sunny", got.Note)
	assert.Empty(t, got.ServerID)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.True(t, base.Equal(got.RecordedAt))

	_, err = r.Get(ctx, "u2", "m1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInsert_DuplicateRequestIDRejected(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, mood("m1", "calm", 6, base)))
	dup := mood("m2", "calm", 6, base)
	dup.RequestID = "req-m1"
	assert.Error(t, r.Insert(ctx, dup))
}

func TestUpdatePayload(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	require.NoError(t, r.Insert(ctx, mood("m1", "calm", 6, base)))

	upd := mood("m1", "happy", 8, base.Add(time.Hour))
	upd.Tags = []string{"x"}
	require.NoError(t, r.UpdatePayload(ctx, upd))

	got, err := r.Get(ctx, "u1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "happy", got.Mood)
	assert.Equal(t, 8, got.Intensity)
	assert.Equal(t, "req-m1", got.RequestID)

	assert.ErrorIs(t, r.UpdatePayload(ctx, mood("nope", "x", 1, base)), common.ErrorNotFound)
}

func TestListRecentBetweenAndSearch(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	a := mood("a", "calm", 4, base)
	a.Note = "Quiet morning"
	b := mood("b", "anxious", 7, base.Add(2*time.Hour))
	b.Tags = []string{"work"}
	c := mood("c", "calm", 6, base.Add(26*time.Hour))
	for _, m := range []*models.Mood{a, b, c} {
		require.NoError(t, r.Insert(ctx, m))
	}

	recent, err := r.ListRecent(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].LocalID)
	assert.Equal(t, "b", recent[1].LocalID)

	day, err := r.ListBetween(ctx, "u1", base, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "a", day[0].LocalID)

	found, err := r.Search(ctx, "u1", "QUIET")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a", found[0].LocalID)

	found, err = r.Search(ctx, "u1", "work")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b", found[0].LocalID)

	found, err = r.Search(ctx, "u1", "100%")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestStats(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, mood("a", "calm", 4, base)))
	require.NoError(t, r.Insert(ctx, mood("b", "calm", 6, base.Add(time.Hour))))
	require.NoError(t, r.Insert(ctx, mood("c", "sad", 2, base.Add(2*time.Hour))))
	require.NoError(t, r.Insert(ctx, mood("d", "sad", 9, base.Add(72*time.Hour))))

	s, err := r.Stats(ctx, "u1", base, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 4.0, s.AverageIntensity, 0.001)
	assert.Equal(t, map[string]int{"calm": 2, "sad": 1}, s.ByMood)

	empty, err := r.Stats(ctx, "u2", base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.AverageIntensity)
}
