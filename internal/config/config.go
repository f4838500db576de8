package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const envHome = "SHORTHAND_HOME"

// DefaultFormat matches the output layout of the command when no format is
// configured.
const DefaultFormat = time.RFC1123

type Config struct {
	// Timezone is used when an expression carries no quoted zone and no
	// --tz flag is given. Empty means the system local zone.
	Timezone string `yaml:"timezone" toml:"timezone"`
	Format   string `yaml:"format" toml:"format"`
	JSON     bool   `yaml:"json" toml:"json"`
	NoColor  bool   `yaml:"no_color" toml:"no_color"`
}

func defaults() Config {
	return Config{Format: DefaultFormat}
}

// Home returns the configuration directory. Defaults to ~/.shorthand, can be
// overridden via SHORTHAND_HOME.
func Home() string {
	if v := os.Getenv(envHome); v != "" {
		return v
	}
	hd, err := os.UserHomeDir()
	if err != nil || hd == "" {
		return ".shorthand"
	}
	return filepath.Join(hd, ".shorthand")
}

// Path returns the config file that Load reads when given no explicit path:
// config.yaml if present, then config.toml.
func Path() string {
	h := Home()
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		p := filepath.Join(h, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(h, "config.yaml")
}

// Load reads configuration from path, or from Path() when path is empty.
// A missing default file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := defaults()
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fileCfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(b, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	} else if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	// Merge: override defaults with provided values if non-zero
	if fileCfg.Timezone != "" {
		cfg.Timezone = fileCfg.Timezone
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.JSON {
		cfg.JSON = true
	}
	if fileCfg.NoColor {
		cfg.NoColor = true
	}
	return cfg, nil
}
