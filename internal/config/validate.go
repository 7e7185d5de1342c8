package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.Database) == "" {
		return errors.New("paths.database must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	for _, ext := range c.Import.SidecarExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("import.sidecar_extensions entry %q is not a file extension", ext)
		}
	}
	if c.Import.MaxResolveDepth < 1 {
		return errors.New("import.max_resolve_depth must be positive")
	}
	if strings.TrimSpace(c.Import.FFprobeBinary) == "" {
		return errors.New("import.ffprobe_binary must be set")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
