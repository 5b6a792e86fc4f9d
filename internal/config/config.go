package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries operator-tunable run settings. Everything has a working
// default so the tool runs with no config file at all; flags override
// whatever is loaded here.
type Config struct {
	// WordsPerSecond calibrates the word-count duration estimate to a
	// narrator's actual pace.
	WordsPerSecond float64 `yaml:"words_per_second"`

	// OutDir is the root for per-run artifact directories.
	OutDir string `yaml:"out_dir"`

	// AuditLog is the shared append-only validation log.
	AuditLog string `yaml:"audit_log"`
}

func Default() Config {
	return Config{
		WordsPerSecond: 2.5,
		OutDir:         "out",
		AuditLog:       "timing_validation.log",
	}
}

// Load reads a YAML config over the defaults. A missing file is not an
// error; it just means defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
