package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the file-level defaults for oscat. Flags override any
// value set here.
type Config struct {
	// Target is the default host:port for `oscat send`.
	Target string `yaml:"target"`
	// Listen is the default bind address for `oscat listen`.
	Listen string `yaml:"listen"`
	// Doubles encodes non-integer numbers as 64-bit floats.
	Doubles bool `yaml:"doubles"`
	// Oversize is extra encode buffer slack for multi-byte text.
	Oversize int `yaml:"oversize"`
}

func defaultConfig() Config {
	return Config{
		Target: "localhost:9000",
		Listen: ":9000",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
