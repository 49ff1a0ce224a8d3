// Package storage defines the key/value port backing the deck store. The
// contract deliberately mirrors browser local storage (string keys, opaque
// values) while adding an atomic multi-key write so the deck metadata and the
// slide content entries can never drift apart on a failed save.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound reports a missing key. Absence is a valid result for read
// paths; callers translate it to nil rather than surfacing a failure.
var ErrKeyNotFound = errors.New("storage: key not found")

// Op is a single mutation inside an atomic batch. When Delete is set the
// value is ignored and the key is removed.
type Op struct {
	Key    string
	Value  []byte
	Delete bool
}

// Port encapsulates the operations required by the deck store. Implementations
// must make Apply atomic: either every op in the batch takes effect or none do.
type Port interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Apply(ctx context.Context, ops []Op) error
}

// SetOp builds a write op.
func SetOp(key string, value []byte) Op {
	return Op{Key: key, Value: value}
}

// DeleteOp builds a removal op.
func DeleteOp(key string) Op {
	return Op{Key: key, Delete: true}
}
