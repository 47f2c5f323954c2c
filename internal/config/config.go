package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Cities  []City        `mapstructure:"cities"`
	Shell   ShellConfig   `mapstructure:"shell"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig holds where and how trip datasets are read
type DataConfig struct {
	Dir             string `mapstructure:"dir"`
	TimestampLayout string `mapstructure:"timestamp_layout"`
}

// City maps a city name to its prompt shorthand and backing CSV file.
type City struct {
	Name string `mapstructure:"name"`
	Key  string `mapstructure:"key"`
	File string `mapstructure:"file"`
}

// ShellConfig holds interactive shell behavior
type ShellConfig struct {
	RawPageSize int `mapstructure:"raw_page_size"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file and environment variables.
// An empty path skips the file and yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Enable environment variable override, e.g. BIKESHARE_DATA_DIR
	v.SetEnvPrefix("BIKESHARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting files or env.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:             ".",
			TimestampLayout: "2006-01-02 15:04:05",
		},
		Cities: []City{
			{Name: "chicago", Key: "c", File: "chicago.csv"},
			{Name: "new york city", Key: "n", File: "new_york_city.csv"},
			{Name: "washington", Key: "w", File: "washington.csv"},
		},
		Shell:   ShellConfig{RawPageSize: 5},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("data.dir", d.Data.Dir)
	v.SetDefault("data.timestamp_layout", d.Data.TimestampLayout)

	cities := make([]map[string]any, 0, len(d.Cities))
	for _, c := range d.Cities {
		cities = append(cities, map[string]any{"name": c.Name, "key": c.Key, "file": c.File})
	}
	v.SetDefault("cities", cities)

	v.SetDefault("shell.raw_page_size", d.Shell.RawPageSize)

	// Interactive sessions keep the console quiet unless asked otherwise
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Data.TimestampLayout == "" {
		return fmt.Errorf("data.timestamp_layout is required")
	}

	if len(c.Cities) == 0 {
		return fmt.Errorf("cities must contain at least one city")
	}
	names := make(map[string]bool, len(c.Cities))
	keys := make(map[string]bool, len(c.Cities))
	for i, city := range c.Cities {
		if city.Name == "" {
			return fmt.Errorf("cities[%d].name is required", i)
		}
		if city.File == "" {
			return fmt.Errorf("cities[%d].file is required", i)
		}
		if len(city.Key) != 1 {
			return fmt.Errorf("cities[%d].key must be a single character", i)
		}
		name := strings.ToLower(city.Name)
		key := strings.ToLower(city.Key)
		if names[name] {
			return fmt.Errorf("cities[%d].name %q is duplicated", i, city.Name)
		}
		if keys[key] {
			return fmt.Errorf("cities[%d].key %q is duplicated", i, city.Key)
		}
		names[name] = true
		keys[key] = true
	}

	if c.Shell.RawPageSize < 1 {
		return fmt.Errorf("shell.raw_page_size must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// City returns the configured city with the given name (case-insensitive).
func (c *Config) City(name string) (City, bool) {
	for _, city := range c.Cities {
		if strings.EqualFold(city.Name, name) {
			return city, true
		}
	}
	return City{}, false
}

// CityByKey resolves a prompt shorthand such as "c" to its city.
func (c *Config) CityByKey(key string) (City, bool) {
	for _, city := range c.Cities {
		if strings.EqualFold(city.Key, key) {
			return city, true
		}
	}
	return City{}, false
}
