package mtag

import "golang.org/x/text/cases"

// TagSet maps case-folded raw tag keys to their values. Values are the JSON
// shapes a sidecar file may contain: string, float64, or []any of those.
type TagSet map[string]any

var keyFolder = cases.Fold()

// FoldKey normalizes a raw tag key for TagSet lookup and storage.
func FoldKey(key string) string {
	return keyFolder.String(key)
}

// Clone returns a shallow copy of the tag set.
func (t TagSet) Clone() TagSet {
	out := make(TagSet, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Apply overlays a raw sidecar object onto the tag set and returns the
// result as a new value; the receiver is not modified. Keys are folded
// before assignment. Any key whose merged value is an empty array is removed,
// which is how sidecar files express deletion of an inherited tag.
func (t TagSet) Apply(raw map[string]any) TagSet {
	out := t.Clone()
	for k, v := range raw {
		out[FoldKey(k)] = v
	}
	for k, v := range out {
		if seq, ok := v.([]any); ok && len(seq) == 0 {
			delete(out, k)
		}
	}
	return out
}
