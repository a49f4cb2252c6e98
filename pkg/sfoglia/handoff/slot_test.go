package handoff

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

func TestMemoryStorePutTakeDelete(t *testing.T) {
	s := NewMemoryStore(0)
	require.NoError(t, s.Put("id-1", []byte("payload")))

	got, err := s.Take("id-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	_, err = s.Take("id-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRejectsReusedID(t *testing.T) {
	s := NewMemoryStore(0)
	require.NoError(t, s.Put("id-1", []byte("a")))
	assert.ErrorIs(t, s.Put("id-1", []byte("b")), ErrSlotExists)
}

func TestMemoryStoreSweepsExpiredSlots(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	require.NoError(t, s.Put("stale", []byte("a")))
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, s.Put("fresh", []byte("b")), "sweep frees the expired id's memory")
	_, err := s.Take("stale")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.Take("fresh")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestFileStorePutTakeDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, 0)
	require.NoError(t, err)

	id := uuid.NewString()
	require.NoError(t, s.Put(id, []byte("payload")))

	got, err := s.Take(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	_, err = s.Take(id)
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "consumed slot leaves no file behind")
}

func TestFileStoreRejectsReusedID(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)

	require.NoError(t, s.Put("abc", []byte("a")))
	assert.ErrorIs(t, s.Put("abc", []byte("b")), ErrSlotExists)
}

func TestFileStoreSweepsExpiredSlots(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.Put("stale", []byte("a")))
	old := time.Now().Add(-time.Hour)
	stalePath := filepath.Join(dir, "stale"+constants.HandoffFileSuffix)
	require.NoError(t, os.Chtimes(stalePath, old, old))

	require.NoError(t, s.Put("fresh", []byte("b")), "put triggers the sweep")

	_, err = s.Take("stale")
	assert.ErrorIs(t, err, ErrNotFound, "an unconsumed slot must not leak indefinitely")

	got, err := s.Take("fresh")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestFileStoreSanitizesHostileIDs(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, 0)
	require.NoError(t, err)

	require.NoError(t, s.Put("../escape", []byte("x")))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "___escape"+constants.HandoffFileSuffix, entries[0].Name())

	got, err := s.Take("../escape")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}
