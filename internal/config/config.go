package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "shorewave"

// DefaultServerURL is the song server the player talks to when nothing is
// configured.
const DefaultServerURL = "http://127.0.0.1:3000"

type Config struct {
	ServerURL     string `koanf:"server_url"`     // song server base URL
	DefaultFolder string `koanf:"default_folder"` // folder loaded at startup, empty for none
	DefaultVolume int    `koanf:"default_volume"` // 0-100
	LogFile       string `koanf:"log_file"`       // empty disables file logging
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		ServerURL:     DefaultServerURL,
		DefaultVolume: 50,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ServerURL = strings.TrimSuffix(cfg.ServerURL, "/")
	if cfg.DefaultVolume < 0 || cfg.DefaultVolume > 100 {
		cfg.DefaultVolume = 50
	}
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func configPaths() []string {
	return []string{
		// 1. XDG config dir
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
