package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	API    APIConfig    `yaml:"api" mapstructure:"api"`
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Load   LoadConfig   `yaml:"load" mapstructure:"load"`
	Bounds BoundsConfig `yaml:"bounds" mapstructure:"bounds"`
	Geo    GeoConfig    `yaml:"geo" mapstructure:"geo"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// APIConfig configures the Seattle Open Data Portal client.
type APIConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	Limit       int    `yaml:"limit" mapstructure:"limit"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// DataConfig holds local data paths.
type DataConfig struct {
	RawPath string `yaml:"raw_path" mapstructure:"raw_path"`
}

// LoadConfig configures tabular loading and validation.
type LoadConfig struct {
	ParseDates          bool    `yaml:"parse_dates" mapstructure:"parse_dates"`
	Validate            bool    `yaml:"validate" mapstructure:"validate"`
	MissingThresholdPct float64 `yaml:"missing_threshold_pct" mapstructure:"missing_threshold_pct"`
}

// BoundsConfig holds the coordinate bounding box used to clip records to
// the city limits.
type BoundsConfig struct {
	LatColumn string  `yaml:"lat_column" mapstructure:"lat_column"`
	LonColumn string  `yaml:"lon_column" mapstructure:"lon_column"`
	LatMin    float64 `yaml:"lat_min" mapstructure:"lat_min"`
	LatMax    float64 `yaml:"lat_max" mapstructure:"lat_max"`
	LonMin    float64 `yaml:"lon_min" mapstructure:"lon_min"`
	LonMax    float64 `yaml:"lon_max" mapstructure:"lon_max"`
}

// GeoConfig configures geospatial loading.
type GeoConfig struct {
	CRS string `yaml:"crs" mapstructure:"crs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("api.base_url", "https://data.seattle.gov/resource/tazs-3rd5.csv")
	v.SetDefault("api.limit", 50000)
	v.SetDefault("api.timeout_secs", 60)
	v.SetDefault("api.max_retries", 3)
	v.SetDefault("api.user_agent", "seattle-crime/1.0")
	v.SetDefault("data.raw_path", "data/raw/spd_crime_data.csv")
	v.SetDefault("load.parse_dates", true)
	v.SetDefault("load.validate", true)
	v.SetDefault("load.missing_threshold_pct", 50)
	v.SetDefault("bounds.lat_column", "latitude")
	v.SetDefault("bounds.lon_column", "longitude")
	v.SetDefault("bounds.lat_min", 47.4)
	v.SetDefault("bounds.lat_max", 47.8)
	v.SetDefault("bounds.lon_min", -122.5)
	v.SetDefault("bounds.lon_max", -122.2)
	v.SetDefault("geo.crs", "EPSG:4326")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
