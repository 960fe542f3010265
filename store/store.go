package store

import (
	"strings"

	"coderkit/log"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

type TxCb func(tx *leveldb.Transaction) error

var logger = log.WithModule("store")

func Open(path string) (*leveldb.DB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}
	logger.Debug("opened database", "path", path)
	return db, nil
}

// WithTx runs cb in a transaction, committing if cb succeeds and discarding
// otherwise.
func WithTx(db *leveldb.DB, cb TxCb) (err error) {
	tx, err := db.OpenTransaction()
	if err != nil {
		return errors.Wrap(err, "error opening transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Discard()
			panic(p)
		} else if err != nil {
			tx.Discard()
		} else {
			err = tx.Commit()
		}
	}()

	return cb(tx)
}

// Prefixer returns a function joining its arguments onto prefix with "/".
func Prefixer(prefix string) func(k ...string) []byte {
	return func(parts ...string) []byte {
		k := strings.Join(append([]string{prefix}, parts...), "/")
		return []byte(k)
	}
}
