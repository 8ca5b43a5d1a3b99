// Package storage defines the storage collaborators of the ingestion
// pipeline: a scratch area for files under validation and an append-only
// store for published derivatives.
package storage

import (
	"context"
	"errors"
)

// ErrObjectExists is returned by AssetStore.Write when the key is taken.
// Derivative keys are content addressed, so callers may treat it as success.
var ErrObjectExists = errors.New("storage: object already exists")

// AssetStore is the permanent, append-only derivative store. The pipeline
// never reads back what it writes.
type AssetStore interface {
	// Write stores data under key and returns the final location.
	Write(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Location returns where key lives without touching the backend.
	Location(key string) string
	// URL resolves key to an address a browser can fetch.
	URL(ctx context.Context, key string) (string, error)
}

// ScratchStore parks uploaded files while they are validated.
type ScratchStore interface {
	EnsureDir() error
	Write(name string, data []byte) (string, error)
	Delete(path string) error
}
