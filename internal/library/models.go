package library

import (
	"time"

	"mtag/internal/media/ffprobe"
)

// Track is one resolved record headed for the library: the concrete media
// file path, its probed audio properties, and the typed metadata fields
// keyed by output field name.
type Track struct {
	Path   string
	Audio  ffprobe.AudioProperties
	Fields map[string]any
}

// ImportRun is a row in the imports journal.
type ImportRun struct {
	ID            string
	Root          string
	SidecarFiles  int
	TracksAdded   int
	TracksSkipped int
	FilesFailed   int
	StartedAt     time.Time
	FinishedAt    time.Time
}
