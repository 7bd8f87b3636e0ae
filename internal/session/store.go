// Package session keeps per-visitor state between the steps of the booking flow.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when the key is absent or expired.
var ErrNotFound = errors.New("session: key not found")

// Store is a session-scoped key-value store. Values are opaque bytes.
type Store interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}
