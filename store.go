package salaw

import (
	"context"
	"io"
)

// ResourceStatus reports the cache state of one catalog entry.
type ResourceStatus struct {
	Resource
	Available bool  `json:"available"`
	Size      int64 `json:"size"`
}

// DocumentStore downloads, validates, caches, and serves the bytes of
// catalog entries. It is the only component that touches raw document bytes
// on disk.
type DocumentStore interface {
	// Init runs the startup pass: every catalog entry is validated on disk
	// or downloaded. Partial availability is expected; entries that cannot
	// be acquired are logged and excluded. An error is returned only when
	// the cache directory itself is unusable.
	Init(ctx context.Context) error

	// EnsureAvailable reports whether a validated cached copy of the
	// resource exists or could be produced. A valid existing file is used
	// without a network call; otherwise the resource is downloaded with
	// retries and strict content validation.
	EnsureAvailable(ctx context.Context, res *Resource) bool

	// Available returns a snapshot of the resources that currently have a
	// validated cached copy.
	Available() []Resource

	// Statuses returns the cache state of every catalog entry, available
	// or not.
	Statuses() []ResourceStatus

	// Refresh deletes all cached files and reruns the full
	// validate-or-download pass. It is an explicit administrative
	// operation, never implicit.
	Refresh(ctx context.Context) error

	// Open returns a reader over the cached document bytes.
	// Returns ENOTFOUND if the resource is not available.
	Open(res *Resource) (io.ReadCloser, error)
}
