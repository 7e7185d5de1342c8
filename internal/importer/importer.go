package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mtag/internal/config"
	"mtag/internal/fields"
	"mtag/internal/library"
	"mtag/internal/logging"
	"mtag/internal/media/ffprobe"
	"mtag/internal/mtag"
)

// MediaReader supplies the fixed audio properties of a resolved media file.
// Probe failures are reported but never fail an import.
type MediaReader interface {
	ReadProperties(ctx context.Context, path string) (ffprobe.AudioProperties, error)
}

type ffprobeReader struct {
	binary string
}

func (r ffprobeReader) ReadProperties(ctx context.Context, path string) (ffprobe.AudioProperties, error) {
	result, err := ffprobe.Inspect(ctx, r.binary, path)
	if err != nil {
		return ffprobe.AudioProperties{}, err
	}
	return result.AudioProperties(), nil
}

// Summary reports what one import run did.
type Summary struct {
	RunID          string
	Root           string
	SidecarFiles   int
	TracksAdded    int
	TracksSkipped  int
	EntriesSkipped int
	FilesFailed    int
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Importer drives sidecar ingestion for one library store.
type Importer struct {
	cfg      *config.Config
	store    *library.Store
	media    MediaReader
	resolver *mtag.Resolver
	logger   *slog.Logger
	dryRun   bool
}

// Option customizes importer construction.
type Option func(*Importer)

// WithMediaReader replaces the ffprobe-backed media reader.
func WithMediaReader(reader MediaReader) Option {
	return func(imp *Importer) { imp.media = reader }
}

// WithDryRun resolves and converts without writing to the library.
func WithDryRun(dryRun bool) Option {
	return func(imp *Importer) { imp.dryRun = dryRun }
}

// New builds an importer over the given store.
func New(cfg *config.Config, store *library.Store, logger *slog.Logger, opts ...Option) *Importer {
	logger = logging.WithComponent(logger, "importer")
	imp := &Importer{
		cfg:      cfg,
		store:    store,
		media:    ffprobeReader{binary: cfg.Import.FFprobeBinary},
		resolver: mtag.NewResolver(cfg.Import.SidecarExtensions, cfg.Import.MaxResolveDepth, logger),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Run walks root and imports every sidecar file beneath it.
func (imp *Importer) Run(ctx context.Context, root string) (*Summary, error) {
	expanded, err := config.ExpandPath(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return nil, fmt.Errorf("stat import root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("import root %s is not a directory", expanded)
	}

	if !imp.dryRun {
		release, err := imp.store.AcquireImportLock()
		if err != nil {
			return nil, err
		}
		defer release()
	}

	summary := &Summary{
		RunID:     uuid.NewString(),
		Root:      expanded,
		StartedAt: time.Now().UTC(),
	}
	logger := imp.logger.With(logging.String("run_id", summary.RunID))
	logger.Info("import started", logging.String("root", expanded), logging.Bool("dry_run", imp.dryRun))

	// Iterative walk; directories are a work queue, not a recursion.
	pending := []string{expanded}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dir := pending[0]
		pending = pending[1:]

		children, err := os.ReadDir(dir)
		if err != nil {
			logger.Warn("read directory", logging.String("dir", dir), logging.Error(err))
			continue
		}
		for _, child := range children {
			path := filepath.Join(dir, child.Name())
			if child.IsDir() {
				pending = append(pending, path)
				continue
			}
			if !mtag.Sniff(path) {
				continue
			}
			summary.SidecarFiles++
			imp.processSidecar(ctx, logger, path, summary)
		}
	}

	summary.FinishedAt = time.Now().UTC()
	if !imp.dryRun {
		if err := imp.store.RecordImport(ctx, library.ImportRun{
			ID:            summary.RunID,
			Root:          summary.Root,
			SidecarFiles:  summary.SidecarFiles,
			TracksAdded:   summary.TracksAdded,
			TracksSkipped: summary.TracksSkipped,
			FilesFailed:   summary.FilesFailed,
			StartedAt:     summary.StartedAt,
			FinishedAt:    summary.FinishedAt,
		}); err != nil {
			logger.Warn("record import run", logging.Error(err))
		}
	}

	logger.Info("import finished",
		logging.Int("sidecar_files", summary.SidecarFiles),
		logging.Int("tracks_added", summary.TracksAdded),
		logging.Int("tracks_skipped", summary.TracksSkipped),
		logging.Int("entries_skipped", summary.EntriesSkipped),
		logging.Int("files_failed", summary.FilesFailed),
	)
	return summary, nil
}

// processSidecar converts one sidecar file's entries and inserts them as a
// single album. A reference miss or decode failure abandons the remaining
// entries and the pending batch; the caller's walk continues regardless.
func (imp *Importer) processSidecar(ctx context.Context, logger *slog.Logger, path string, summary *Summary) {
	dir := filepath.Dir(path)
	entries := mtag.NewLoader(path, logger).Entries()

	var batch []library.Track
	for _, entry := range entries {
		resolved, err := imp.resolver.Resolve(entry.Ref, dir)
		if err != nil {
			if errors.Is(err, mtag.ErrUnsupportedReference) {
				summary.EntriesSkipped++
				logger.Warn("skipping unsupported reference",
					logging.String("file", path),
					logging.Int("entry", entry.Index),
					logging.String("reference", entry.Ref))
				continue
			}
			summary.FilesFailed++
			logger.Error("reference resolution failed; abandoning file",
				logging.String("file", path),
				logging.Int("entry", entry.Index),
				logging.String("reference", entry.Ref),
				logging.Error(err))
			return
		}

		if imp.cfg.Import.SkipExisting {
			exists, err := imp.store.HasPath(ctx, resolved)
			if err != nil {
				summary.FilesFailed++
				logger.Error("library lookup failed; abandoning file",
					logging.String("file", path), logging.Error(err))
				return
			}
			if exists {
				summary.TracksSkipped++
				logger.Info("skipping already-imported track", logging.String("path", resolved))
				continue
			}
		}

		values, err := fields.Convert(entry.Tags)
		if err != nil {
			summary.FilesFailed++
			logger.Error("tag decode failed; abandoning file",
				logging.String("file", path),
				logging.Int("entry", entry.Index),
				logging.Error(err))
			return
		}

		audio, err := imp.media.ReadProperties(ctx, resolved)
		if err != nil {
			logger.Warn("audio probe failed", logging.String("path", resolved), logging.Error(err))
			audio = ffprobe.AudioProperties{}
		}

		batch = append(batch, library.Track{
			Path:   resolved,
			Audio:  audio,
			Fields: fields.Finalize(values),
		})
	}

	if len(batch) == 0 {
		return
	}
	if imp.dryRun {
		summary.TracksAdded += len(batch)
		return
	}
	if _, err := imp.store.AddAlbum(ctx, batch); err != nil {
		summary.FilesFailed++
		logger.Error("album insert failed", logging.String("file", path), logging.Error(err))
		return
	}
	summary.TracksAdded += len(batch)
	logger.Info("album imported", logging.String("file", path), logging.Int("tracks", len(batch)))
}
