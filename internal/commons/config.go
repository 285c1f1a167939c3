package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/geovannedomonte/vaiart/internal/config"
)

// LoadConfig reads configuration from a yaml file. Env-based loading
// (config.Load) remains the default; the file is for local setups.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
