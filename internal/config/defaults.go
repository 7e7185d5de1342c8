package config

const (
	defaultDatabase        = "~/.local/share/mtag/library.db"
	defaultLogDir          = "~/.local/share/mtag/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultMaxResolveDepth = 10
	defaultFFprobeBinary   = "ffprobe"
)

func defaultSidecarExtensions() []string {
	return []string{".tags"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Database: defaultDatabase,
			LogDir:   defaultLogDir,
		},
		Import: Import{
			SidecarExtensions: defaultSidecarExtensions(),
			SkipExisting:      true,
			MaxResolveDepth:   defaultMaxResolveDepth,
			FFprobeBinary:     defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
