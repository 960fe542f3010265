package store

import (
	"bytes"
	"strings"

	"coderkit/coder"
	"coderkit/marshal"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	ErrNotFound       = errors.New("key not found")
	ErrConfigMismatch = errors.New("bucket was written with a different coder config")
	ErrInvalidName    = errors.New("bucket names must be non-empty and must not contain /")
)

var (
	bucketsPrefix    = Prefixer("buckets")
	bucketMetaPrefix = Prefixer(string(bucketsPrefix("meta")))
	bucketDataPrefix = Prefixer(string(bucketsPrefix("data")))
)

var metaMarshaller marshal.TOML[bucketMeta]

// bucketMeta pins the coder a bucket was created with. Encoded values do not
// describe their own compression, so reopening a bucket with other settings
// would silently misread every value.
type bucketMeta struct {
	Coder           string `toml:"coder"`
	CompressEnabled bool   `toml:"compress_enabled"`
	CompressLevel   int    `toml:"compress_level"`
	Algorithm       string `toml:"algorithm"`
}

func newBucketMeta(c string, cfg coder.Config) bucketMeta {
	meta := bucketMeta{Coder: c, CompressEnabled: cfg.CompressEnabled}
	if cfg.CompressEnabled {
		meta.CompressLevel = cfg.CompressLevel
		meta.Algorithm = cfg.Algorithm
	}
	return meta
}

// Bucket stores values of T under string keys, encoded with a coder.
type Bucket[T any] struct {
	db     *leveldb.DB
	name   string
	prefix func(k ...string) []byte
	enc    coder.Encoder[T]
	dec    coder.Decoder[T]
}

// NewBucket opens the bucket called name, which must not contain "/". The
// first call records c's name and
// Config; later calls with a different coder or Config fail with
// ErrConfigMismatch.
func NewBucket[T any](db *leveldb.DB, name string, c coder.Coder[T]) (*Bucket[T], error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, errors.Wrapf(ErrInvalidName, "%q", name)
	}
	meta := newBucketMeta(c.Name(), c.Config())
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		key := bucketMetaPrefix(name)
		existing, err := tx.Get(key, nil)
		if errors.Is(err, leveldb.ErrNotFound) {
			b, err := metaMarshaller.Marshal(meta)
			if err != nil {
				return err
			}
			return errors.Wrap(tx.Put(key, b, nil), "error writing bucket meta")
		}
		if err != nil {
			return errors.Wrap(err, "error reading bucket meta")
		}
		stored, err := metaMarshaller.Unmarshal(existing)
		if err != nil {
			return err
		}
		if stored != meta {
			return errors.Wrapf(ErrConfigMismatch, "bucket %s: stored %+v, got %+v", name, stored, meta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Bucket[T]{
		db:     db,
		name:   name,
		prefix: Prefixer(string(bucketDataPrefix(name))),
		enc:    c.NewEncoder(),
		dec:    c.NewDecoder(),
	}, nil
}

func (b *Bucket[T]) Name() string {
	return b.name
}

func (b *Bucket[T]) Put(key string, v T) error {
	return WithTx(b.db, func(tx *leveldb.Transaction) error {
		return b.PutTx(tx, key, v)
	})
}

func (b *Bucket[T]) PutTx(tx *leveldb.Transaction, key string, v T) error {
	enc, err := b.enc.Encode(v)
	if err != nil {
		return errors.Wrap(err, "error encoding value")
	}
	if err := tx.Put(b.prefix(key), enc, nil); err != nil {
		return errors.Wrap(err, "error writing value")
	}
	return nil
}

// GetRaw returns the stored bytes for key without decoding them.
func (b *Bucket[T]) GetRaw(key string) ([]byte, error) {
	raw, err := b.db.Get(b.prefix(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "%s/%s", b.name, key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error reading value")
	}
	return raw, nil
}

func (b *Bucket[T]) Get(key string) (T, error) {
	raw, err := b.GetRaw(key)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := b.dec.Decode(raw)
	if err != nil {
		return v, errors.Wrap(err, "error decoding value")
	}
	return v, nil
}

func (b *Bucket[T]) Has(key string) (bool, error) {
	return b.db.Has(b.prefix(key), nil)
}

func (b *Bucket[T]) Delete(key string) error {
	return WithTx(b.db, func(tx *leveldb.Transaction) error {
		return errors.Wrap(tx.Delete(b.prefix(key), nil), "error deleting value")
	})
}

// Keys returns the bucket's keys in lexical order.
func (b *Bucket[T]) Keys() ([]string, error) {
	prefix := append(b.prefix(), '/')
	iter := b.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var keys []string
	for iter.Next() {
		keys = append(keys, string(bytes.TrimPrefix(iter.Key(), prefix)))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "error iterating keys")
	}
	return keys, nil
}
