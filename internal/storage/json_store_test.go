package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "items.json"))
}

func TestAddGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Add(Record{"name": "Alice", "skills": []string{"Go"}})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, "Alice", rec["name"])
	require.Equal(t, []any{"Go"}, rec["skills"])
	require.Equal(t, id, rec["id"])

	created, err := time.Parse(time.RFC3339Nano, rec["created_at"].(string))
	require.NoError(t, err)
	updated, err := time.Parse(time.RFC3339Nano, rec["updated_at"].(string))
	require.NoError(t, err)
	require.Equal(t, created, updated)
}

func TestAddOverwritesCallerSuppliedMetadata(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Add(Record{"id": "custom", "created_at": "1999-01-01T00:00:00Z"})
	require.NoError(t, err)
	require.NotEqual(t, "custom", id)

	rec, err := store.Get(id)
	require.NoError(t, err)
	require.NotEqual(t, "1999-01-01T00:00:00Z", rec["created_at"])
}

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	data, err := store.ReadAll()
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestReadAllIdempotent(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Add(Record{"n": 1})
	require.NoError(t, err)
	_, err = store.Add(Record{"n": 2})
	require.NoError(t, err)

	first, err := store.ReadAll()
	require.NoError(t, err)
	second, err := store.ReadAll()
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestReadAllMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewStore(path).ReadAll()
	require.Error(t, err)
}

func TestUpdateMergesAndRefreshesTimestamp(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Add(Record{"a": "keep", "b": "old"})
	require.NoError(t, err)

	before, err := store.Get(id)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, store.Update(id, Record{"b": "new", "c": "added"}))

	rec, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, "keep", rec["a"])
	require.Equal(t, "new", rec["b"])
	require.Equal(t, "added", rec["c"])
	require.Equal(t, before["created_at"], rec["created_at"])
	require.NotEqual(t, before["updated_at"], rec["updated_at"])
}

func TestUpdateCannotChangeID(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Add(Record{"a": 1})
	require.NoError(t, err)

	require.NoError(t, store.Update(id, Record{"id": "hijacked"}))

	rec, err := store.Get(id)
	require.NoError(t, err)
	require.Equal(t, id, rec["id"])
}

func TestUpdateNotFound(t *testing.T) {
	store := newTestStore(t)
	require.ErrorIs(t, store.Update("missing", Record{"a": 1}), ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Add(Record{"a": 1})
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))
	_, err = store.Get(id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNotFoundLeavesCollectionUnchanged(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Add(Record{"a": 1})
	require.NoError(t, err)

	require.ErrorIs(t, store.Delete("missing"), ErrNotFound)

	data, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, data, 1)
}

func TestFindConjunctiveEquality(t *testing.T) {
	store := newTestStore(t)
	for _, rec := range []Record{
		{"kind": "x", "name": "a"},
		{"kind": "x", "name": "b"},
		{"kind": "y", "name": "a"},
	} {
		_, err := store.Add(rec)
		require.NoError(t, err)
	}

	byKind, err := store.Find(Record{"kind": "x"})
	require.NoError(t, err)
	require.Len(t, byKind, 2)

	both, err := store.Find(Record{"kind": "x", "name": "a"})
	require.NoError(t, err)
	require.Len(t, both, 1)

	none, err := store.Find(Record{"kind": "z"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	store := newTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.Add(Record{"n": n})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	data, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, data, writers)

	ids := make(map[any]struct{}, writers)
	for _, rec := range data {
		ids[rec["id"]] = struct{}{}
	}
	require.Len(t, ids, writers)
}

func TestReopenSeesPersistedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")

	id, err := NewStore(path).Add(Record{"name": "persisted"})
	require.NoError(t, err)

	rec, err := NewStore(path).Get(id)
	require.NoError(t, err)
	require.Equal(t, "persisted", rec["name"])
}
