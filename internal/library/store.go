package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"mtag/internal/config"
	"mtag/internal/fields"
)

// ErrImportLocked means another importer currently holds the import lock.
var ErrImportLocked = errors.New("library is locked by another import")

// Store manages library persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the library database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Paths.Database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// AcquireImportLock takes the file lock beside the database that serializes
// importers. The returned release function must be called when done.
func (s *Store) AcquireImportLock() (func(), error) {
	lock := flock.New(s.path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return nil, ErrImportLocked
	}
	return func() { _ = lock.Unlock() }, nil
}

// HasPath reports whether a track record for the given path already exists.
func (s *Store) HasPath(ctx context.Context, path string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM tracks WHERE path = ?", path).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check path %q: %w", path, err)
	}
	return count > 0, nil
}

// TrackCount returns the number of tracks in the library.
func (s *Store) TrackCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM tracks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

// AddAlbum inserts all tracks produced from one sidecar file as a single
// album inside one transaction. Either every track lands or none do.
func (s *Store) AddAlbum(ctx context.Context, tracks []Track) (int64, error) {
	if len(tracks) == 0 {
		return 0, errors.New("add album: no tracks")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin album tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := tx.ExecContext(ctx, "INSERT INTO albums (added_at) VALUES (?)", now)
	if err != nil {
		return 0, fmt.Errorf("insert album: %w", err)
	}
	albumID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("album id: %w", err)
	}

	for _, track := range tracks {
		if err := insertTrack(ctx, tx, albumID, now, track); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit album: %w", err)
	}
	return albumID, nil
}

// RecentImports returns the most recent journal rows, newest first.
func (s *Store) RecentImports(ctx context.Context, limit int) ([]ImportRun, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, sidecar_files, tracks_added, tracks_skipped, files_failed, started_at, finished_at
         FROM imports ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	defer rows.Close()

	var runs []ImportRun
	for rows.Next() {
		var run ImportRun
		var started, finished string
		if err := rows.Scan(&run.ID, &run.Root, &run.SidecarFiles, &run.TracksAdded,
			&run.TracksSkipped, &run.FilesFailed, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan import row: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RecordImport appends a run to the imports journal.
func (s *Store) RecordImport(ctx context.Context, run ImportRun) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO imports (id, root, sidecar_files, tracks_added, tracks_skipped, files_failed, started_at, finished_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Root,
		run.SidecarFiles,
		run.TracksAdded,
		run.TracksSkipped,
		run.FilesFailed,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record import %s: %w", run.ID, err)
	}
	return nil
}

// fieldColumns is the closed set of metadata columns, derived from the
// converter catalogs so the store and the schema cannot drift apart without
// a test catching it.
var fieldColumns = buildFieldColumns()

func buildFieldColumns() map[string]struct{} {
	columns := make(map[string]struct{}, len(fields.Catalog)+len(fields.DependentCatalog))
	for _, converter := range fields.Catalog {
		columns[converter.Field] = struct{}{}
	}
	for _, dependent := range fields.DependentCatalog {
		columns[dependent.Field] = struct{}{}
	}
	return columns
}

func insertTrack(ctx context.Context, tx *sql.Tx, albumID int64, now string, track Track) error {
	columns := []string{"album_id", "path", "added_at", "length", "bitrate", "format", "samplerate", "bitdepth", "channels"}
	values := []any{albumID, track.Path, now,
		track.Audio.Length, track.Audio.Bitrate, track.Audio.Format,
		track.Audio.SampleRate, track.Audio.BitDepth, track.Audio.Channels}

	names := make([]string, 0, len(track.Fields))
	for name := range track.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := fieldColumns[name]; !ok {
			return fmt.Errorf("insert track %q: unknown field %q", track.Path, name)
		}
		columns = append(columns, name)
		values = append(values, columnValue(track.Fields[name]))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO tracks (%s) VALUES (%s)", strings.Join(columns, ", "), placeholders)
	if _, err := tx.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("insert track %q: %w", track.Path, err)
	}
	return nil
}

// columnValue maps decoded field values onto SQLite-storable types. Dates
// arrive as time.Time after dependent-field finalization and are stored in
// ISO form.
func columnValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return v
	}
}
