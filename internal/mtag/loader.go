package mtag

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"

	"mtag/internal/logging"
)

// referenceKey is the reserved sidecar key holding an entry's path reference.
const referenceKey = "@"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Entry is one parsed sidecar entry: its path reference plus the effective
// tag set at that point in the file, with inherited keys already merged in.
type Entry struct {
	Index int // 1-based position within the file
	Ref   string
	Tags  TagSet
}

// Loader parses a single sidecar file into its entries.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader returns a loader for the sidecar file at path. A nil logger
// silences the per-file and per-entry warnings.
func NewLoader(path string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{path: path, logger: logger}
}

// Sniff reports whether the file at path looks like a sidecar file: UTF-8
// text (an optional byte-order mark is tolerated) whose first significant
// byte opens a JSON array. It reads only a small prefix.
func Sniff(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 64)
	n, _ := f.Read(buf)
	head := bytes.TrimPrefix(buf[:n], utf8BOM)
	head = bytes.TrimLeft(head, " \t\r\n")
	return len(head) > 0 && head[0] == '['
}

// Entries parses the file and returns its entries in declaration order.
//
// A file that cannot be read or decoded contributes zero entries; the
// failure is logged and never propagated, so one broken file cannot poison
// a directory walk. An element without the "@" key is skipped, but its tags
// still merge into the cumulative set inherited by later entries.
func (l *Loader) Entries() []Entry {
	data, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Warn("read sidecar", logging.String("file", l.path), logging.Error(err))
		return nil
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		l.logger.Warn("sidecar is not a JSON array of objects", logging.String("file", l.path), logging.Error(err))
		return nil
	}

	entries := make([]Entry, 0, len(raw))
	tags := TagSet{}
	for i, obj := range raw {
		tags = tags.Apply(obj)
		// The reference is reserved per element and never inherited.
		delete(tags, referenceKey)
		ref, ok := referenceOf(obj)
		if !ok {
			l.logger.Warn("sidecar element has no @ reference",
				logging.String("file", l.path), logging.Int("element", i+1))
			continue
		}
		entries = append(entries, Entry{Index: len(entries) + 1, Ref: ref, Tags: tags.Clone()})
	}
	return entries
}

func referenceOf(obj map[string]any) (string, bool) {
	for k, v := range obj {
		if FoldKey(k) == referenceKey {
			ref, ok := v.(string)
			return ref, ok && ref != ""
		}
	}
	return "", false
}

// Path returns the sidecar file path backing the loader.
func (l *Loader) Path() string {
	return l.path
}
