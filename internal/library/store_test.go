package library_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mtag/internal/library"
	"mtag/internal/media/ffprobe"
	"mtag/internal/testsupport"
)

func TestOpenCreatesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	count, err := store.TrackCount(context.Background())
	if err != nil {
		t.Fatalf("TrackCount failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty library, got %d tracks", count)
	}
}

func TestAddAlbumAndHasPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	tracks := []library.Track{
		{
			Path:  "/music/a/01.flac",
			Audio: ffprobe.AudioProperties{Length: 180.5, Bitrate: 900000, Format: "flac", SampleRate: 44100, BitDepth: 16, Channels: 2},
			Fields: map[string]any{
				"title": "One",
				"track": int64(1),
				"comp":  false,
				"date":  time.Date(1999, 5, 3, 0, 0, 0, 0, time.UTC),
				"year":  int64(1999),
			},
		},
		{
			Path:   "/music/a/02.flac",
			Fields: map[string]any{"title": "Two", "track": int64(2)},
		},
	}

	albumID, err := store.AddAlbum(ctx, tracks)
	if err != nil {
		t.Fatalf("AddAlbum failed: %v", err)
	}
	if albumID == 0 {
		t.Fatal("expected album ID to be assigned")
	}

	for _, track := range tracks {
		exists, err := store.HasPath(ctx, track.Path)
		if err != nil {
			t.Fatalf("HasPath failed: %v", err)
		}
		if !exists {
			t.Fatalf("expected %s to exist", track.Path)
		}
	}
	if exists, _ := store.HasPath(ctx, "/music/a/03.flac"); exists {
		t.Fatal("unexpected path reported present")
	}

	count, err := store.TrackCount(ctx)
	if err != nil {
		t.Fatalf("TrackCount failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 tracks, got %d", count)
	}
}

func TestAddAlbumIsAtomic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.AddAlbum(ctx, []library.Track{{Path: "/music/dup.flac"}}); err != nil {
		t.Fatalf("seed AddAlbum failed: %v", err)
	}

	// Second batch includes a duplicate path; nothing from it may land.
	_, err := store.AddAlbum(ctx, []library.Track{
		{Path: "/music/new.flac"},
		{Path: "/music/dup.flac"},
	})
	if err == nil {
		t.Fatal("expected duplicate path to fail the batch")
	}

	if exists, _ := store.HasPath(ctx, "/music/new.flac"); exists {
		t.Fatal("failed batch must not leave partial rows")
	}
	count, _ := store.TrackCount(ctx)
	if count != 1 {
		t.Fatalf("expected 1 track after rollback, got %d", count)
	}
}

func TestAddAlbumRejectsUnknownField(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	_, err := store.AddAlbum(context.Background(), []library.Track{
		{Path: "/music/x.flac", Fields: map[string]any{"nonsense": 1}},
	})
	if err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestAddAlbumRequiresTracks(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.AddAlbum(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestImportJournal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	started := time.Now().UTC().Add(-time.Minute)
	run := library.ImportRun{
		ID:            "run-1",
		Root:          "/music",
		SidecarFiles:  3,
		TracksAdded:   12,
		TracksSkipped: 1,
		FilesFailed:   0,
		StartedAt:     started,
		FinishedAt:    started.Add(30 * time.Second),
	}
	if err := store.RecordImport(ctx, run); err != nil {
		t.Fatalf("RecordImport failed: %v", err)
	}

	runs, err := store.RecentImports(ctx, 5)
	if err != nil {
		t.Fatalf("RecentImports failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != "run-1" || got.TracksAdded != 12 || got.Root != "/music" {
		t.Fatalf("unexpected run %+v", got)
	}
	if got.FinishedAt.Sub(got.StartedAt) != 30*time.Second {
		t.Fatalf("timestamps not round-tripped: %+v", got)
	}
}

func TestImportLock(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	release, err := store.AcquireImportLock()
	if err != nil {
		t.Fatalf("first lock failed: %v", err)
	}

	if _, err := store.AcquireImportLock(); !errors.Is(err, library.ErrImportLocked) {
		t.Fatalf("expected ErrImportLocked, got %v", err)
	}

	release()
	release2, err := store.AcquireImportLock()
	if err != nil {
		t.Fatalf("relock after release failed: %v", err)
	}
	release2()
}
