package config

const (
	defaultConfigPath       = "~/.config/songsearch/config.toml"
	defaultCatalogBaseURL   = "https://itunes.apple.com/search"
	defaultCatalogCountry   = "ua"
	defaultProviderLabel    = "Apple Music"
	defaultCatalogTimeout   = 10
	defaultCatalogUserAgent = "songsearch/dev"
	defaultHistoryPath      = "~/.local/share/songsearch/history.db"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	maxCatalogLimit         = 200
	catalogURLEnv           = "SONGSEARCH_CATALOG_URL"
	catalogCountryEnv       = "SONGSEARCH_COUNTRY"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			BaseURL:        defaultCatalogBaseURL,
			Country:        defaultCatalogCountry,
			ProviderLabel:  defaultProviderLabel,
			TimeoutSeconds: defaultCatalogTimeout,
			UserAgent:      defaultCatalogUserAgent,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
