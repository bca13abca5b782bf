// internal/appconfig/appconfig.go
// Package appconfig manages loading and validating application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benchlens/benchlens/internal/metrics"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"

	// Default conversion factors: a 7 W LED bulb, a 400 gCO2/kWh grid, and
	// 0.9 Wh per minute of online video.
	defaultLEDBulbWatts        = 7.0
	defaultGridIntensity       = 400.0
	defaultOnlineVideoWhPerMin = 0.9
)

// Config represents the top-level application configuration.
type Config struct {
	Factors    metrics.Factors `json:"factors"`
	Override   bool            `json:"override"`
	DataPath   string          `json:"dataPath,omitempty"`
	ExportPath string          `json:"export,omitempty"`
	LogFile    string          `json:"logFile,omitempty"`
	Debug      bool            `json:"debug"`
	ConfigPath string          `json:"-"`
}

// DefaultFactors returns the built-in conversion factors used when the
// config file omits them.
func DefaultFactors() metrics.Factors {
	return metrics.Factors{
		LEDBulbWatts:            defaultLEDBulbWatts,
		GridIntensityGCO2PerKWh: defaultGridIntensity,
		OnlineVideoWhPerMin:     defaultOnlineVideoWhPerMin,
	}
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{Factors: DefaultFactors()}
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "benchlens.log"
}

// Validate checks that every conversion factor is positive. Factor
// validation happens here at the boundary so the engine can assume sane
// inputs.
func (c Config) Validate() error {
	if c.Factors.LEDBulbWatts <= 0 {
		return fmt.Errorf("ledBulbWatts must be positive, got %v", c.Factors.LEDBulbWatts)
	}
	if c.Factors.GridIntensityGCO2PerKWh <= 0 {
		return fmt.Errorf("gridIntensityGCO2PerKwh must be positive, got %v", c.Factors.GridIntensityGCO2PerKWh)
	}
	if c.Factors.OnlineVideoWhPerMin <= 0 {
		return fmt.Errorf("onlineVideoWhPerMin must be positive, got %v", c.Factors.OnlineVideoWhPerMin)
	}
	return nil
}

// Load reads the application configuration from the specified path. A
// missing file at the default path is not an error: the built-in defaults
// apply. An explicitly requested path must exist.
func Load(path string) (Config, error) {
	explicit := path != "" && path != DefaultConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := validateSchema(data); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	// Unmarshal over the defaults so factors the file omits keep their
	// built-in values.
	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	config.ConfigPath = path
	return config, nil
}
