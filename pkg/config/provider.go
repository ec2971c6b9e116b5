// Package config defines the service configuration schema and its backing
// providers. Configuration can live in a YAML file or a SQLite database;
// both implement ConfigProvider so the rest of the service doesn't care.
package config

// ConfigProvider is a source of service configuration.
type ConfigProvider interface {
	// LoadConfig reads the complete configuration.
	LoadConfig() (*ConfigData, error)

	// IsReadOnly reports whether SaveConfig is supported.
	IsReadOnly() bool

	Close() error
}

// ConfigData is the complete service configuration.
type ConfigData struct {
	HTTP      HTTPData      `json:"http" yaml:"http"`
	Providers ProvidersData `json:"providers" yaml:"providers"`
	Cache     CacheData     `json:"cache" yaml:"cache"`
	Locations LocationsData `json:"locations" yaml:"locations"`
	Logging   LoggingData   `json:"logging" yaml:"logging"`
}

// HTTPData configures the REST API listener.
type HTTPData struct {
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
}

// ProvidersData configures the upstream weather providers. Primary picks
// which client is tried first ("openmeteo" or "tomorrowio").
type ProvidersData struct {
	Primary          string `json:"primary" yaml:"primary"`
	TomorrowIOAPIKey string `json:"tomorrowio_api_key,omitempty" yaml:"tomorrowio_api_key,omitempty"`
}

// CacheData configures the forecast cache manager.
type CacheData struct {
	Dir           string `json:"dir,omitempty" yaml:"dir,omitempty"`
	MaxAgeMinutes int    `json:"max_age_minutes" yaml:"max_age_minutes"`
}

// LocationsData configures the saved-locations store.
type LocationsData struct {
	DatabasePath string `json:"database_path" yaml:"database_path"`
}

// LoggingData configures log verbosity and the optional rotating file sink.
type LoggingData struct {
	Debug bool   `json:"debug" yaml:"debug"`
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
}

// ApplyDefaults fills unset fields with working defaults.
func (c *ConfigData) ApplyDefaults() {
	if c.HTTP.ListenAddr == "" {
		c.HTTP.ListenAddr = ":8080"
	}
	if c.Providers.Primary == "" {
		c.Providers.Primary = "openmeteo"
	}
	if c.Cache.MaxAgeMinutes <= 0 {
		c.Cache.MaxAgeMinutes = 30
	}
	if c.Locations.DatabasePath == "" {
		c.Locations.DatabasePath = "locations.db"
	}
}
