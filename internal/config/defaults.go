package config

const (
	defaultMaxBaseLen   = 150
	defaultExtension    = ".md"
	defaultManifestPath = "~/.local/share/notename/manifest.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Naming: Naming{
			MaxBaseLen: defaultMaxBaseLen,
			UseSpaces:  true,
			Extension:  defaultExtension,
		},
		Links: Links{
			Rewrite:         true,
			BundleResources: false,
		},
		Manifest: Manifest{
			Enabled: false,
			Path:    defaultManifestPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
