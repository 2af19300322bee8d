package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casefolio/casefolio/internal/store"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCollectionLoadMissingFile(t *testing.T) {
	collection := store.NewCollection[record](filepath.Join(t.TempDir(), "missing.json"))

	records, err := collection.Load()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollectionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.json")
	collection := store.NewCollection[record](path)

	input := []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, collection.Save(input))

	loaded, err := collection.Load()
	require.NoError(t, err)
	assert.Equal(t, input, loaded)

	// Saving what was loaded must not change the file
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, collection.Save(loaded))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCollectionLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	collection := store.NewCollection[record](path)
	_, err := collection.Load()

	assert.ErrorIs(t, err, store.ErrCorrupt)
}

func TestCollectionFind(t *testing.T) {
	collection := store.NewCollection[record](filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, collection.Save([]record{{Name: "a"}, {Name: "b"}}))

	found, ok, err := collection.Find(func(r record) bool { return r.Name == "b" })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", found.Name)

	_, ok, err = collection.Find(func(r record) bool { return r.Name == "c" })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDocumentPreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"a","theme":"dark"}`), 0o644))

	document := store.NewDocument(path)
	fields, err := document.Load()
	require.NoError(t, err)

	fields["title"] = json.RawMessage(`"b"`)
	require.NoError(t, document.Save(fields))

	reloaded, err := document.Load()
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"dark"`), reloaded["theme"])
	assert.Equal(t, json.RawMessage(`"b"`), reloaded["title"])
}

func TestDocumentLoadMissingFile(t *testing.T) {
	document := store.NewDocument(filepath.Join(t.TempDir(), "missing.json"))

	fields, err := document.Load()

	require.NoError(t, err)
	assert.Nil(t, fields)
}
