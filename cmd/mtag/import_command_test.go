package main

import (
	"path/filepath"
	"testing"
)

const albumSidecar = `[
  {"@": "01.flac", "album": "Night Drive", "artist": "Sodium Lights", "title": "Ignition", "track": "1"},
  {"@": "02.flac", "title": "Coast Road", "track": "2"}
]`

func TestImportCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	album := filepath.Join(env.musicDir, "night-drive")
	writeSidecar(t, filepath.Join(album, "01.flac"), "fLaC")
	writeSidecar(t, filepath.Join(album, "02.flac"), "fLaC")
	writeSidecar(t, filepath.Join(album, "album.tags"), albumSidecar)

	out, _, err := runCLI(t, env.configPath, "import", env.musicDir)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "Sidecar Files")

	out, _, err = runCLI(t, env.configPath, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Tracks: 2")
	requireContains(t, out, "music")
}

func TestImportCommandDryRun(t *testing.T) {
	env := setupCLITestEnv(t)

	album := filepath.Join(env.musicDir, "album")
	writeSidecar(t, filepath.Join(album, "01.flac"), "fLaC")
	writeSidecar(t, filepath.Join(album, "album.tags"),
		`[{"@": "01.flac", "title": "Solo"}]`)

	out, _, err := runCLI(t, env.configPath, "import", "--dry-run", env.musicDir)
	if err != nil {
		t.Fatalf("import --dry-run: %v", err)
	}
	requireContains(t, out, "Dry run; nothing was written")

	out, _, err = runCLI(t, env.configPath, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Tracks: 0")
	requireContains(t, out, "No import runs recorded")
}

func TestImportCommandRejectsMissingDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath, "import", filepath.Join(env.baseDir, "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestInspectCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	album := filepath.Join(env.musicDir, "album")
	writeSidecar(t, filepath.Join(album, "01.flac"), "fLaC")
	writeSidecar(t, filepath.Join(album, "album.tags"),
		`[{"@": "01.flac", "title": "Solo", "artist": "Duo"}]`)

	out, _, err := runCLI(t, env.configPath, "inspect", filepath.Join(album, "album.tags"))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "01.flac")
	requireContains(t, out, "Solo")
	requireContains(t, out, "Duo")
}
