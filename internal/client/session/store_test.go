package session

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/researchhub/hubcli/internal/client/models"
	"github.com/researchhub/hubcli/internal/client/storage"
	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func profile() *models.User {
	return &models.User{ID: "1", FullName: "A B", Email: "a@b.com"}
}

func TestStore_EmptyReturnsNone(t *testing.T) {
	s := NewMemoryStore(logging.Discard())

	tok, ok := s.Token()
	assert.False(t, ok)
	assert.Empty(t, tok)

	_, ok = s.Profile()
	assert.False(t, ok)
	assert.False(t, s.Authenticated())
}

func TestStore_SetThenClear(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, setupDB(t, ":memory:"), logging.Discard())

	s.SetSession(ctx, "t", profile())

	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "t", tok)
	p, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, *profile(), p)

	s.Clear(ctx)
	_, ok = s.Token()
	assert.False(t, ok)
	_, ok = s.Profile()
	assert.False(t, ok)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, setupDB(t, ":memory:"), logging.Discard())

	s.SetSession(ctx, "t", profile())
	s.Clear(ctx)
	s.Clear(ctx)

	assert.False(t, s.Authenticated())
	_, ok := s.Profile()
	assert.False(t, ok)
}

func TestStore_ProfileIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logging.Discard())

	p := profile()
	s.SetSession(ctx, "t", p)
	p.Email = "changed@b.com"

	got, _ := s.Profile()
	assert.Equal(t, "a@b.com", got.Email)
}

func TestStore_EmptyTokenClears(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logging.Discard())

	s.SetSession(ctx, "t", profile())
	s.SetSession(ctx, "", profile())

	assert.False(t, s.Authenticated())
	_, ok := s.Profile()
	assert.False(t, ok, "a profile must never outlive its credential")
}

func TestStore_TokenWithoutProfile(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ":memory:")
	s := Open(ctx, db, logging.Discard())

	s.SetSession(ctx, "t", profile())
	s.SetSession(ctx, "t2", nil)

	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "t2", tok)
	_, ok = s.Profile()
	assert.False(t, ok)

	reopened := Open(ctx, db, logging.Discard())
	_, ok = reopened.Profile()
	assert.False(t, ok, "stale profile row must be removed with the new token")
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := storage.InitDatabase(ctx, path)
	require.NoError(t, err)
	Open(ctx, db, logging.Discard()).SetSession(ctx, "tok123", profile())
	require.NoError(t, db.Close())

	s := Open(ctx, setupDB(t, path), logging.Discard())
	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "tok123", tok)
	p, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, "a@b.com", p.Email)
}

func TestStore_ClearSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ":memory:")

	s := Open(ctx, db, logging.Discard())
	s.SetSession(ctx, "t", profile())
	s.Clear(ctx)

	assert.False(t, Open(ctx, db, logging.Discard()).Authenticated())
}

func TestOpen_ProfileWithoutTokenIsIgnored(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ":memory:")
	_, err := db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES (?, ?)`,
		common.UserStorageKey, []byte(`{"id":1,"email":"a@b.com"}`))
	require.NoError(t, err)

	s := Open(ctx, db, logging.Discard())
	assert.False(t, s.Authenticated())
	_, ok := s.Profile()
	assert.False(t, ok)
}

func TestOpen_MalformedProfileIsLoggedAndIgnored(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ":memory:")
	_, err := db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES (?, ?), (?, ?)`,
		common.TokenStorageKey, []byte("t"), common.UserStorageKey, []byte("{broken"))
	require.NoError(t, err)

	var buf bytes.Buffer
	s := Open(ctx, db, logging.New(&buf, "text", "warn"))

	assert.False(t, s.Authenticated())
	assert.Contains(t, buf.String(), "persisted session ignored")
}

func TestStore_WriteFailureKeepsMemoryView(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t, ":memory:")

	var buf bytes.Buffer
	s := Open(ctx, db, logging.New(&buf, "text", "warn"))
	require.NoError(t, db.Close())

	s.SetSession(ctx, "t", profile())

	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "t", tok)
	assert.Contains(t, buf.String(), "session not persisted")

	s.Clear(ctx)
	assert.False(t, s.Authenticated())
	assert.Contains(t, buf.String(), "session not erased from disk")
}

func TestStore_ConcurrentReadersSeeWholePairs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logging.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.SetSession(ctx, "t", profile())
				s.Clear(ctx)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := s.Snapshot()
				if snap.Profile != nil && snap.Token == "" {
					t.Errorf("profile observed without credential")
					return
				}
			}
		}()
	}
	wg.Wait()
}
