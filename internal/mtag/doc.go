// Package mtag parses m-tag sidecar files and resolves the path references
// they contain.
//
// A sidecar file is a JSON array of flat objects. Each object carries a "@"
// key pointing at the track it describes plus arbitrary raw tag keys. Tag
// sets accumulate down the file: an entry inherits every key declared by the
// entries above it unless it overrides the key or deletes it with an empty
// array. The Loader produces the per-entry effective tag sets; the Resolver
// turns a reference of the form "path" or "path|index" into a concrete file
// path, recursing through nested sidecar files for indexed references.
//
// Parse failures are isolated to the offending file or entry. Reference
// failures carry sentinel errors so callers can distinguish the permanent
// unsupported cases from corrupt input.
package mtag
