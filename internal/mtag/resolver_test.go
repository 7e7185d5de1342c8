package mtag_test

import (
	"errors"
	"path/filepath"
	"testing"

	"mtag/internal/mtag"
	"mtag/internal/testsupport"
)

func newResolver() *mtag.Resolver {
	return mtag.NewResolver(nil, 0, nil)
}

func TestResolveDirectReference(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "01.flac"), []byte("x"))

	got, err := newResolver().Resolve("01.flac", dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(dir, "01.flac"))
	if got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}

func TestResolveRelativeTraversal(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "flac", "01.flac"), []byte("x"))

	got, err := newResolver().Resolve("../flac/01.flac", filepath.Join(dir, "tags"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(dir, "flac", "01.flac"))
	if got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}

func TestResolveIndexedReferenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "01.flac"), []byte("x"))
	testsupport.WriteFile(t, filepath.Join(dir, "02.flac"), []byte("x"))
	testsupport.WriteSidecar(t, filepath.Join(dir, "album.tags"), []map[string]any{
		{"@": "01.flac"},
		{"@": "02.flac"},
	})

	r := newResolver()
	indexed, err := r.Resolve("album.tags|2", dir)
	if err != nil {
		t.Fatalf("indexed Resolve failed: %v", err)
	}
	direct, err := r.Resolve("02.flac", dir)
	if err != nil {
		t.Fatalf("direct Resolve failed: %v", err)
	}
	if indexed != direct {
		t.Fatalf("indexed resolution %q != direct resolution %q", indexed, direct)
	}
}

func TestResolveNestedIndexedChain(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "disc2")
	testsupport.WriteFile(t, filepath.Join(nested, "07.flac"), []byte("x"))
	testsupport.WriteSidecar(t, filepath.Join(nested, "disc.tags"), []map[string]any{
		{"@": "ignored.flac"},
		{"@": "07.flac"},
	})
	testsupport.WriteSidecar(t, filepath.Join(dir, "box.tags"), []map[string]any{
		{"@": "disc2/disc.tags|2"},
	})

	got, err := newResolver().Resolve("box.tags|1", dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(nested, "07.flac"))
	if got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}

func TestResolveNonNumericIndexIsUnsupported(t *testing.T) {
	dir := t.TempDir()
	_, err := newResolver().Resolve("box.zip|inner.flac", dir)
	if !errors.Is(err, mtag.ErrUnsupportedReference) {
		t.Fatalf("expected ErrUnsupportedReference, got %v", err)
	}
}

func TestResolveNonPositiveIndexIsUnsupported(t *testing.T) {
	dir := t.TempDir()
	for _, ref := range []string{"a.tags|0", "a.tags|-1"} {
		if _, err := newResolver().Resolve(ref, dir); !errors.Is(err, mtag.ErrUnsupportedReference) {
			t.Fatalf("ref %q: expected ErrUnsupportedReference, got %v", ref, err)
		}
	}
}

func TestResolveIndexOutOfRange(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteSidecar(t, filepath.Join(dir, "album.tags"), []map[string]any{
		{"@": "01.flac"},
	})

	_, err := newResolver().Resolve("album.tags|5", dir)
	if !errors.Is(err, mtag.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestResolveIndexedNonSidecarTarget(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "audio.flac"), []byte("x"))

	_, err := newResolver().Resolve("audio.flac|2", dir)
	if !errors.Is(err, mtag.ErrNotSidecar) {
		t.Fatalf("expected ErrNotSidecar, got %v", err)
	}
}

func TestResolveCyclicReference(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteSidecar(t, filepath.Join(dir, "a.tags"), []map[string]any{
		{"@": "b.tags|1"},
	})
	testsupport.WriteSidecar(t, filepath.Join(dir, "b.tags"), []map[string]any{
		{"@": "a.tags|1"},
	})

	_, err := newResolver().Resolve("a.tags|1", dir)
	if !errors.Is(err, mtag.ErrCyclicReference) {
		t.Fatalf("expected ErrCyclicReference, got %v", err)
	}
}

func TestResolveCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "01.flac"), []byte("x"))
	testsupport.WriteSidecar(t, filepath.Join(dir, "album.mtags"), []map[string]any{
		{"@": "01.flac"},
	})

	r := mtag.NewResolver([]string{".mtags"}, 0, nil)
	got, err := r.Resolve("album.mtags|1", dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(dir, "01.flac"))
	if got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}
