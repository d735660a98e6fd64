package leveldb

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "db"), 0, 0, false)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Get([]byte("missing"))
	assert.True(t, IsNotFoundErr(err))

	require.NoError(t, db.Put([]byte("entry:A"), []byte("1")))
	require.NoError(t, db.Put([]byte("entry:B"), []byte("2")))
	require.NoError(t, db.Put([]byte("other:C"), []byte("3")))
	has, err := db.Has([]byte("entry:A"))
	require.NoError(t, err)
	assert.True(t, has)

	var keys []string
	iter := db.NewIterator([]byte("entry:"), nil)
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	iter.Release()
	require.NoError(t, iter.Error())
	assert.Equal(t, []string{"entry:A", "entry:B"}, keys)

	b := db.NewBatch()
	require.NoError(t, b.Delete([]byte("entry:A")))
	require.NoError(t, b.Put([]byte("entry:D"), []byte("44")))
	assert.Equal(t, len("entry:A")+2, b.ValueSize())
	require.NoError(t, b.Write())
	b.Reset()
	assert.Zero(t, b.ValueSize())

	has, err = db.Has([]byte("entry:A"))
	require.NoError(t, err)
	assert.False(t, has)
	v, err := db.Get([]byte("entry:D"))
	require.NoError(t, err)
	assert.Equal(t, "44", string(v))
}

func TestOpenForNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache")

	db, err := OpenForNetwork(path, 16, 16, "mainnet")
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	require.NoError(t, db.Close())

	db, err = OpenForNetwork(path, 16, 16, "mainnet")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = OpenForNetwork(path, 16, 16, "testnet")
	assert.True(t, errors.Is(err, ErrNetworkMismatch))
}
