package mtag

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"mtag/internal/logging"
)

// DefaultMaxDepth bounds reference-chain length when the caller does not
// configure a limit. Real sidecar trees nest one or two levels deep.
const DefaultMaxDepth = 10

// Resolver resolves path references against the directory of the sidecar
// file that declares them. Indexed references re-enter the loader on the
// target sidecar file, so resolution recurses until it reaches a direct
// file reference.
type Resolver struct {
	extensions []string
	maxDepth   int
	logger     *slog.Logger
}

// NewResolver builds a resolver that treats files with the given extensions
// as nested sidecar files. Defaults apply for empty extensions (".tags"),
// a non-positive depth limit, and a nil logger.
func NewResolver(extensions []string, maxDepth int, logger *slog.Logger) *Resolver {
	if len(extensions) == 0 {
		extensions = []string{".tags"}
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{extensions: extensions, maxDepth: maxDepth, logger: logger}
}

// Resolve turns ref, declared inside a sidecar file living in dir, into a
// concrete absolute file path.
//
// A plain reference resolves relative to dir. A "path|index" reference must
// point at a sidecar file; its index-th entry (1-based) is selected and that
// entry's own reference is resolved in turn, using the nested sidecar's
// directory. The chain terminates at the first direct reference.
func (r *Resolver) Resolve(ref, dir string) (string, error) {
	return r.resolve(ref, dir, make(map[string]struct{}), 0)
}

func (r *Resolver) resolve(ref, dir string, visited map[string]struct{}, depth int) (string, error) {
	if depth > r.maxDepth {
		return "", fmt.Errorf("%w: more than %d hops resolving %q", ErrResolveDepth, r.maxDepth, ref)
	}

	base, indexPart, indexed := strings.Cut(ref, "|")
	var index int
	if indexed {
		parsed, err := strconv.Atoi(strings.TrimSpace(indexPart))
		if err != nil || parsed < 1 {
			// Archive member references land here. Permanent limitation.
			return "", fmt.Errorf("%w: %q", ErrUnsupportedReference, ref)
		}
		index = parsed
	}

	resolved, err := canonicalize(filepath.Join(dir, base))
	if err != nil {
		return "", err
	}
	if !indexed {
		return resolved, nil
	}

	if !r.isSidecarPath(resolved) {
		return "", fmt.Errorf("%w: %s", ErrNotSidecar, resolved)
	}

	key := resolved + "|" + strconv.Itoa(index)
	if _, seen := visited[key]; seen {
		return "", fmt.Errorf("%w: %s revisited", ErrCyclicReference, key)
	}
	visited[key] = struct{}{}

	entries := NewLoader(resolved, r.logger).Entries()
	if index > len(entries) {
		return "", fmt.Errorf("%w: %s has %d entries, reference selects entry %d",
			ErrReferenceNotFound, resolved, len(entries), index)
	}
	entry := entries[index-1]
	return r.resolve(entry.Ref, filepath.Dir(resolved), visited, depth+1)
}

func (r *Resolver) isSidecarPath(path string) bool {
	ext := filepath.Ext(path)
	for _, candidate := range r.extensions {
		if strings.EqualFold(ext, candidate) {
			return true
		}
	}
	return false
}

// canonicalize makes path absolute and resolves symlinks when the target
// exists. Direct references may point at files that are not present yet, so
// a failed symlink walk falls back to the cleaned absolute path.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return abs, nil
}
