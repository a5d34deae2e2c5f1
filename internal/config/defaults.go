package config

const (
	defaultCacheDir                = "~/.local/share/iatv/cache"
	defaultLogDir                  = "~/.local/share/iatv/logs"
	defaultArchiveBaseURL          = "https://archive.org/details"
	defaultDownloadBaseURL         = "https://archive.org/download"
	defaultRequestTimeoutSeconds   = 30
	defaultWindowSeconds           = 60
	defaultFallbackDurationSeconds = 3660
	defaultLogFormat               = "console"
	defaultLogLevel                = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		Archive: Archive{
			BaseURL:         defaultArchiveBaseURL,
			DownloadBaseURL: defaultDownloadBaseURL,
			RequestTimeout:  defaultRequestTimeoutSeconds,
		},
		Captions: Captions{
			WindowSeconds:           defaultWindowSeconds,
			FallbackDurationSeconds: defaultFallbackDurationSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
