package resetcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStoreOverwriteKeepsSingleEntry(t *testing.T) {
	store := NewStore()
	deadline := time.Now().Add(15 * time.Minute)

	store.Set("a@example.com", "111111", deadline)
	store.Set("a@example.com", "222222", deadline)

	entry, ok := store.Get("a@example.com")
	require.True(t, ok)
	require.Equal(t, "222222", entry.Code)
	require.Equal(t, 1, store.Len())
}

func TestStoreKeepsExpiredEntriesUntilPurge(t *testing.T) {
	store := NewStore()
	now := time.Now()
	store.Set("old@example.com", "111111", now.Add(-2*time.Hour))
	store.Set("stale@example.com", "222222", now.Add(-time.Minute))
	store.Set("live@example.com", "333333", now.Add(15*time.Minute))

	// expired entries are still readable before the sweep
	_, ok := store.Get("old@example.com")
	require.True(t, ok)

	removed := store.PurgeExpired(now.Add(-time.Hour))
	require.Equal(t, 1, removed)

	_, ok = store.Get("old@example.com")
	require.False(t, ok)
	_, ok = store.Get("stale@example.com")
	require.True(t, ok)
	_, ok = store.Get("live@example.com")
	require.True(t, ok)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	store.Set("a@example.com", "123456", time.Now().Add(time.Minute))
	store.Delete("a@example.com")
	_, ok := store.Get("a@example.com")
	require.False(t, ok)
}
