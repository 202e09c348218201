package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// Config is the optional on-disk configuration. It currently carries only
// the default ledger file, used when no file is given on the command line
// and LEDGER_FILE is unset.
type Config struct {
	File string `toml:"file"`
}

// defaultConfigPath returns the conventional config location, e.g.
// ~/.config/ledger/config.toml on Linux.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ledger", "config.toml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing config file is not an error.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := &Config{}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}
