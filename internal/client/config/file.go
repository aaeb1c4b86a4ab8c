package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/gevp/console/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file. Empty fields leave the
// corresponding Config value untouched.
type FileConfig struct {
	APIBaseURL   string `json:"api_base_url" yaml:"api_base_url"`
	DatabasePath string `json:"database_path" yaml:"database_path"`
	WebAddr      string `json:"web_addr" yaml:"web_addr"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with values read from the file named by
// flagx.ConfigFile. It panics on read or decode errors; a missing flag is not
// an error.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (FileConfig, error) {
	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err := yaml.Unmarshal(data, &fc)
		return fc, err
	default:
		err := json.Unmarshal(data, &fc)
		return fc, err
	}
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.WebAddr != "" {
		cfg.WebAddr = fc.WebAddr
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
