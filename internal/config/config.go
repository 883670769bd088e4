// Package config loads the listd configuration file and environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDirName    = ".listd"
	DefaultDataFile   = "listd.json"
	DefaultConfigFile = "config.toml"
	DefaultExportFile = "listd-export.txt"
)

type Config struct {
	// DataFile is the JSON document the app persists to.
	DataFile string `toml:"data_file"`
	// ExportFile is the default destination for the plain-text report.
	ExportFile string `toml:"export_file"`
	// SeedFirstRun pre-creates a starter list when no data file exists.
	SeedFirstRun bool `toml:"seed_first_run"`
	LogLevel     string `toml:"log_level"`
}

func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataFile:     filepath.Join(home, DefaultDirName, DefaultDataFile),
		ExportFile:   DefaultExportFile,
		SeedFirstRun: true,
		LogLevel:     "info",
	}
}

// DefaultPath is where Load looks for the config file when no explicit path
// is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, DefaultDirName, DefaultConfigFile)
}

// Load reads the TOML config at path, falling back to defaults when the
// file does not exist, then applies LISTD_* environment overrides. A file
// that exists but cannot be parsed is an error; silently ignoring it would
// make the app persist to the wrong place.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}
	cfg = fromEnv(cfg)
	cfg.DataFile = expandHome(cfg.DataFile)
	cfg.ExportFile = expandHome(cfg.ExportFile)
	return cfg, nil
}

func fromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("LISTD_DATA_FILE"); ok {
		cfg.DataFile = v
	}
	if v, ok := getEnvString("LISTD_EXPORT_FILE"); ok {
		cfg.ExportFile = v
	}
	if v, ok := getEnvBool("LISTD_SEED_FIRST_RUN"); ok {
		cfg.SeedFirstRun = v
	}
	if v, ok := getEnvString("LISTD_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
