// Package importer walks a directory tree, turning every sidecar file it
// finds into library records.
//
// The walk is iterative and single-threaded. Each sidecar file is processed
// in isolation: its entries are resolved, converted, probed, and inserted as
// one atomic album. Per-entry failures with known causes (unsupported
// archive references, missing @ keys) skip just that entry; reference
// lookups that miss and malformed tag values abandon the rest of that one
// file and the walk moves on.
package importer
