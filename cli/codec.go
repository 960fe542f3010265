package cli

import (
	"coderkit/coder"
	"coderkit/config"
	"coderkit/marshal"
	"coderkit/store"

	"github.com/syndtr/goleveldb/leveldb"
)

// Codec runs one configured coder over raw command line input. Text coders
// treat the input as UTF-8.
type Codec struct {
	Name   string
	Config coder.Config
	Encode func([]byte) ([]byte, error)
	Decode func([]byte) ([]byte, error)
}

// NewCodec builds the coder called name with its settings from cfg.
func NewCodec(cfg *config.Config, name string, opts ...coder.Option) (*Codec, error) {
	cc, err := cfg.Coder(name)
	if err != nil {
		return nil, err
	}

	switch name {
	case coder.NameByteArray:
		c, err := coder.NewByteArrayCoder(cc, opts...)
		if err != nil {
			return nil, err
		}
		enc, dec := c.NewEncoder(), c.NewDecoder()
		return &Codec{
			Name:   name,
			Config: cc,
			Encode: enc.Encode,
			Decode: dec.Decode,
		}, nil
	case coder.NameSimpleString:
		c, err := coder.NewSimpleStringCoder(cc, opts...)
		if err != nil {
			return nil, err
		}
		return textCodec(c), nil
	default:
		c, err := coder.NewSerializableCoder[string](cc, marshal.String{MaxPayloadLen: cfg.MaxPayloadLen()}, opts...)
		if err != nil {
			return nil, err
		}
		return textCodec(c), nil
	}
}

func textCodec(c coder.Coder[string]) *Codec {
	enc, dec := c.NewEncoder(), c.NewDecoder()
	return &Codec{
		Name:   c.Name(),
		Config: c.Config(),
		Encode: func(b []byte) ([]byte, error) {
			return enc.Encode(string(b))
		},
		Decode: func(b []byte) ([]byte, error) {
			s, err := dec.Decode(b)
			if err != nil {
				return nil, err
			}
			return []byte(s), nil
		},
	}
}

// KV is a store bucket seen through raw command line input.
type KV interface {
	Put(key string, v []byte) error
	Get(key string) ([]byte, error)
	GetRaw(key string) ([]byte, error)
	Keys() ([]string, error)
}

// OpenKV opens the bucket holding values of the coder called name.
func OpenKV(db *leveldb.DB, cfg *config.Config, name string) (KV, error) {
	cc, err := cfg.Coder(name)
	if err != nil {
		return nil, err
	}

	switch name {
	case coder.NameByteArray:
		c, err := coder.NewByteArrayCoder(cc)
		if err != nil {
			return nil, err
		}
		b, err := store.NewBucket[[]byte](db, name, c)
		if err != nil {
			return nil, err
		}
		return b, nil
	case coder.NameSimpleString:
		c, err := coder.NewSimpleStringCoder(cc)
		if err != nil {
			return nil, err
		}
		return openTextKV(db, name, c)
	default:
		c, err := coder.NewSerializableCoder[string](cc, marshal.String{MaxPayloadLen: cfg.MaxPayloadLen()})
		if err != nil {
			return nil, err
		}
		return openTextKV(db, name, c)
	}
}

type textKV struct {
	*store.Bucket[string]
}

func openTextKV(db *leveldb.DB, name string, c coder.Coder[string]) (KV, error) {
	b, err := store.NewBucket[string](db, name, c)
	if err != nil {
		return nil, err
	}
	return textKV{b}, nil
}

func (t textKV) Put(key string, v []byte) error {
	return t.Bucket.Put(key, string(v))
}

func (t textKV) Get(key string) ([]byte, error) {
	s, err := t.Bucket.Get(key)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
