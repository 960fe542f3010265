package store

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func TestPrefixer(t *testing.T) {
	base := Prefixer("foo")

	tests := []struct {
		in  []byte
		out string
	}{
		{base("bar"), "foo/bar"},
		{base("bar", "baz"), "foo/bar/baz"},
		{base(), "foo"},
		{base(""), "foo/"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, string(tt.in))
	}
}

func TestWithTx(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	require.NoError(t, WithTx(db, func(tx *leveldb.Transaction) error {
		return tx.Put([]byte("committed"), []byte{1}, nil)
	}))
	has, err := db.Has([]byte("committed"), nil)
	require.NoError(t, err)
	require.True(t, has)

	boom := errors.New("boom")
	err = WithTx(db, func(tx *leveldb.Transaction) error {
		require.NoError(t, tx.Put([]byte("discarded"), []byte{1}, nil))
		return boom
	})
	require.Equal(t, boom, err)
	has, err = db.Has([]byte("discarded"), nil)
	require.NoError(t, err)
	require.False(t, has)
}
