package config

import (
	"os"
	"testing"
)

func TestLoadAndValidate(t *testing.T) {
	// Create temp config file
	content := `
data:
  dir: "/srv/bikeshare"
  timestamp_layout: "2006-01-02 15:04:05"

cities:
  - name: chicago
    key: c
    file: chicago.csv
  - name: washington
    key: w
    file: washington.csv

shell:
  raw_page_size: 10

logging:
  level: "info"
  format: "json"
`
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Data.Dir != "/srv/bikeshare" {
		t.Errorf("Unexpected data dir: %s", cfg.Data.Dir)
	}
	if cfg.Shell.RawPageSize != 10 {
		t.Errorf("Unexpected raw page size: %d", cfg.Shell.RawPageSize)
	}
	if len(cfg.Cities) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(cfg.Cities))
	}
	if cfg.Cities[1].File != "washington.csv" {
		t.Errorf("Unexpected file for %s: %s", cfg.Cities[1].Name, cfg.Cities[1].File)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if len(cfg.Cities) != 3 {
		t.Fatalf("Expected 3 default cities, got %d", len(cfg.Cities))
	}
	if cfg.Shell.RawPageSize != 5 {
		t.Errorf("Expected default raw page size 5, got %d", cfg.Shell.RawPageSize)
	}
	if cfg.Data.TimestampLayout != "2006-01-02 15:04:05" {
		t.Errorf("Unexpected timestamp layout: %s", cfg.Data.TimestampLayout)
	}

	city, ok := cfg.CityByKey("N")
	if !ok || city.Name != "new york city" || city.File != "new_york_city.csv" {
		t.Errorf("CityByKey(N) = %+v, %v", city, ok)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BIKESHARE_DATA_DIR", "/data/trips")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.Dir != "/data/trips" {
		t.Errorf("Expected env override for data dir, got %s", cfg.Data.Dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/bikeshare.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "no cities",
			mutate:  func(c *Config) { c.Cities = nil },
			wantErr: true,
		},
		{
			name: "duplicate key",
			mutate: func(c *Config) {
				c.Cities = append(c.Cities, City{Name: "cleveland", Key: "C", File: "cleveland.csv"})
			},
			wantErr: true,
		},
		{
			name:    "multi-letter key",
			mutate:  func(c *Config) { c.Cities[0].Key = "ch" },
			wantErr: true,
		},
		{
			name:    "missing file",
			mutate:  func(c *Config) { c.Cities[2].File = "" },
			wantErr: true,
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Shell.RawPageSize = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "empty timestamp layout",
			mutate:  func(c *Config) { c.Data.TimestampLayout = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
