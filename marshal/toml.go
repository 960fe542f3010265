package marshal

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// TOML marshals struct values as TOML documents.
type TOML[T any] struct{}

func (TOML[T]) Marshal(v T) ([]byte, error) {
	b, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "error marshalling toml")
	}
	return b, nil
}

func (TOML[T]) Unmarshal(b []byte) (T, error) {
	var v T
	if err := toml.Unmarshal(b, &v); err != nil {
		return v, errors.Wrap(err, "error unmarshalling toml")
	}
	return v, nil
}
