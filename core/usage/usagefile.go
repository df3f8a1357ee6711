// Package usage - Usage side-file serialization
package usage

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cloudcost/internal/errors"
)

// UsageFileName is the usage side-file written next to the descriptor
const UsageFileName = "usage.yml"

// usageFile is the engine's usage-file grammar: one entry per
// resource address
type usageFile struct {
	Version       string                        `yaml:"version"`
	ResourceUsage map[string]map[string]float64 `yaml:"resource_usage"`
}

// WriteFile serializes a resource usage map into dir and returns the
// file path
func (m ResourceUsageMap) WriteFile(dir string) (string, error) {
	file := usageFile{
		Version:       "0.1",
		ResourceUsage: make(map[string]map[string]float64, len(m)),
	}
	for addr, entry := range m {
		file.ResourceUsage[addr.String()] = map[string]float64{entry.Metric: entry.Value}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return "", errors.Wrap(errors.TypeInternal, "failed to encode usage file", err)
	}

	path := filepath.Join(dir, UsageFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(errors.TypeInternal, "failed to write usage file", err)
	}
	return path, nil
}
