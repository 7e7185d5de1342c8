package mtag

import "errors"

var (
	// ErrUnsupportedReference marks a reference whose index segment is not a
	// positive integer. Archive member references look like this; they are a
	// permanent limitation, so callers skip the entry and keep going.
	ErrUnsupportedReference = errors.New("unsupported reference")

	// ErrReferenceNotFound marks an indexed reference that selects past the
	// end of the target sidecar file. This indicates corrupt input.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrNotSidecar marks an indexed reference whose target does not have
	// sidecar shape, so there are no entries to index into.
	ErrNotSidecar = errors.New("referenced file is not a sidecar")

	// ErrCyclicReference marks a reference chain that revisits a
	// (file, entry) pair it already passed through.
	ErrCyclicReference = errors.New("cyclic reference")

	// ErrResolveDepth marks a reference chain deeper than the configured
	// indirection limit.
	ErrResolveDepth = errors.New("reference chain too deep")
)
