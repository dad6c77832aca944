package corpus

import (
	"context"
	"io"
)

// Source is a single-pass, non-restartable stream of Documents (spec.md
// §4.2, §9 "Generators / lazy iteration"). Next returns (nil, io.EOF) once
// exhausted. Any other non-nil error is fatal for the stream — per-document
// structural errors are recovered internally by the implementation and
// never surface here; only I/O-level decode failures propagate.
type Source interface {
	// Next blocks until the next document is available, ctx is cancelled,
	// or the stream is exhausted (io.EOF).
	Next(ctx context.Context) (*Document, error)

	// Close releases the underlying stream. Safe to call multiple times.
	Close() error
}

// ErrClosed is returned by Next after Close has been called.
var ErrClosed = io.ErrClosedPipe
