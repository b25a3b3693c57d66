package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the ignore file a manifest targets when it names none.
const DefaultFile = ".gitignore"

type Block struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

type Config struct {
	File     string   `yaml:"file,omitempty"`
	Patterns []string `yaml:"patterns,omitempty"`
	Blocks   []Block  `yaml:"blocks,omitempty"`

	// dir is the directory holding the manifest; File is relative to it.
	dir string
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg.dir = filepath.Dir(abs)

	return &cfg, nil
}

// TargetPath returns the ignore file the manifest applies to. A relative
// File is resolved against the manifest's directory.
func (c *Config) TargetPath() string {
	file := c.File
	if file == "" {
		file = DefaultFile
	}
	if filepath.IsAbs(file) || c.dir == "" {
		return file
	}
	return filepath.Join(c.dir, file)
}
