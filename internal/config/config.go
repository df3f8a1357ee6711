// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cloudcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains authoritative pricing engine configuration
	Engine EngineConfig `json:"engine"`

	// Estimation contains estimation pipeline configuration
	Estimation EstimationConfig `json:"estimation"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig configures the external authoritative pricing engine
type EngineConfig struct {
	// Binary is the pricing engine executable
	Binary string `json:"binary"`

	// CredentialEnv is the environment variable holding the API credential
	CredentialEnv string `json:"credential_env"`

	// TimeoutSeconds is the hard per-invocation timeout
	TimeoutSeconds int `json:"timeout_seconds"`

	// MaxOutputBytes bounds the engine output buffer
	MaxOutputBytes int64 `json:"max_output_bytes"`
}

// EstimationConfig contains estimation pipeline settings
type EstimationConfig struct {
	// Providers are the cloud providers to estimate for
	Providers []string `json:"providers"`

	// ScratchDir is the base directory for per-run descriptor artifacts
	ScratchDir string `json:"scratch_dir"`

	// CatalogPath optionally overrides the built-in service catalog
	CatalogPath string `json:"catalog_path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDrivers shows cost driver details
	ShowDrivers bool `json:"show_drivers"`

	// ShowConfidence shows confidence scores
	ShowConfidence bool `json:"show_confidence"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			Binary:         "infracost",
			CredentialEnv:  "INFRACOST_API_KEY",
			TimeoutSeconds: 30,
			MaxOutputBytes: 4 << 20,
		},
		Estimation: EstimationConfig{
			Providers:  []string{"aws", "azure", "gcp"},
			ScratchDir: filepath.Join(os.TempDir(), "cloudcost"),
		},
		Output: OutputConfig{
			DefaultFormat:  "json",
			ShowDrivers:    true,
			ShowConfidence: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
