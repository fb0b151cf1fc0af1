// Package tokenstore persists the single session credential across restarts.
// It is pure storage: any string is accepted, validation happens at decode
// time, and writes are whole-value replacements.
package tokenstore

import (
	"context"
	"errors"
)

// ErrNoToken reports that no credential is persisted.
var ErrNoToken = errors.New("no token stored")

// Store is the durable home of the raw credential string.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
