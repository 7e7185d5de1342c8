package testsupport

import (
	"path/filepath"
	"testing"

	"mtag/internal/config"
)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Database = filepath.Join(base, "library.db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}
