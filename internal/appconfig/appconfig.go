// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// EnvPrefix prefixes environment variables that override config keys.
	EnvPrefix = "FRAUDLENS"

	defaultAddr         = ":8080"
	defaultLogFile      = "fraudlens.log"
	defaultExportDir    = "reports"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultChartHeight  = 380
)

// Config represents the top-level application configuration.
type Config struct {
	Addr                string `json:"addr,omitempty" mapstructure:"addr"`
	LogFile             string `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug               bool   `json:"debug" mapstructure:"debug"`
	ExportDir           string `json:"exportDir,omitempty" mapstructure:"exportDir"`
	ReadTimeoutSeconds  int    `json:"readTimeout,omitempty" mapstructure:"readTimeout"`
	WriteTimeoutSeconds int    `json:"writeTimeout,omitempty" mapstructure:"writeTimeout"`
	ChartHeight         int    `json:"chartHeight,omitempty" mapstructure:"chartHeight"`
	AssetsHost          string `json:"assetsHost,omitempty" mapstructure:"assetsHost"`
	ConfigPath          string `json:"-" mapstructure:"-"`
}

// Defaults returns the configuration used when no file or flag sets a value.
func Defaults() Config {
	return Config{
		Addr:                defaultAddr,
		LogFile:             defaultLogFile,
		ExportDir:           defaultExportDir,
		ReadTimeoutSeconds:  int(defaultReadTimeout.Seconds()),
		WriteTimeoutSeconds: int(defaultWriteTimeout.Seconds()),
		ChartHeight:         defaultChartHeight,
	}
}

// ListenAddr returns the HTTP listen address, applying a default if not set.
func (c Config) ListenAddr() string {
	if a := strings.TrimSpace(c.Addr); a != "" {
		return a
	}
	return defaultAddr
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// ExportDirectory returns the directory export artifacts are written to.
func (c Config) ExportDirectory() string {
	if dir := strings.TrimSpace(c.ExportDir); dir != "" {
		return dir
	}
	return defaultExportDir
}

// ReadTimeoutDuration returns the HTTP server read timeout.
func (c Config) ReadTimeoutDuration() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return defaultReadTimeout
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeoutDuration returns the HTTP server write timeout.
func (c Config) WriteTimeoutDuration() time.Duration {
	if c.WriteTimeoutSeconds <= 0 {
		return defaultWriteTimeout
	}
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ChartHeightPx returns the fairness chart height in pixels.
func (c Config) ChartHeightPx() int {
	if c.ChartHeight <= 0 {
		return defaultChartHeight
	}
	return c.ChartHeight
}

// Load reads the application configuration from the specified path. Unset
// fields keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	config.ConfigPath = path
	return config, nil
}

// Validate rejects values that cannot be applied.
func (c Config) Validate() error {
	if c.ReadTimeoutSeconds < 0 || c.WriteTimeoutSeconds < 0 {
		return errors.New("invalid configuration: timeouts must not be negative")
	}
	if c.ChartHeight < 0 {
		return errors.New("invalid configuration: chartHeight must not be negative")
	}
	return nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	config := Defaults()
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
