// Package esaerr defines the sentinel error taxonomy shared by every ESA
// core package: document source decoding, per-document parsing, backing
// store access, and configuration. Callers branch on these with errors.Is;
// every other package wraps the sentinel with fmt.Errorf("...: %w", err) to
// keep a location trail without losing the ability to classify the error.
package esaerr

import "errors"

var (
	// ErrSourceDecode marks a fatal failure decoding the underlying document
	// stream (decompression or XML framing). Ingest must stop.
	ErrSourceDecode = errors.New("esa: source decode failure")

	// ErrDocumentParse marks a single document that could not be
	// interpreted. Non-fatal: the caller logs and continues to the next
	// document.
	ErrDocumentParse = errors.New("esa: document parse failure")

	// ErrStore marks a backing-store failure (open, insert, scan, load).
	// Fatal for the operation in progress.
	ErrStore = errors.New("esa: store failure")

	// ErrConfig marks a missing or inconsistent configuration value, or a
	// filter-chain mismatch between a build and a query session. Fatal at
	// startup.
	ErrConfig = errors.New("esa: configuration error")
)
