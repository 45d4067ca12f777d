package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = ".bouquet.toml"

type Config struct {
	AssetDir      string `toml:"asset_dir"`
	SaveDirectory string `toml:"save_directory"`
	BaseURL       string `toml:"base_url"`
	MaxLinkLength int    `toml:"max_link_length"`
	Confirmations bool   `toml:"confirmations"`
	Paper         string `toml:"paper"`
	Listen        string `toml:"listen"`
	Seed          uint64 `toml:"seed"`
}

func defaultConfig() *Config {
	return &Config{
		AssetDir:      "images",
		SaveDirectory: "",
		BaseURL:       "https://bouquet.local/",
		MaxLinkLength: 32000,
		Confirmations: true,
		Paper:         "#fffaf5",
		Listen:        ":8080",
	}
}

// defaultConfigPath is ~/.bouquet.toml, or "" when there is no home directory.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configFileName)
}

// loadConfig reads path over the defaults. A missing file is not an error;
// a malformed one is.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, wrapError(ErrCodeInvalidConfig, err, "read %s", path)
	}

	config.AssetDir = expandPath(config.AssetDir)
	config.SaveDirectory = expandPath(config.SaveDirectory)
	if config.MaxLinkLength < 0 {
		return nil, newError(ErrCodeInvalidConfig, "max_link_length must not be negative")
	}
	return config, nil
}

// expandPath resolves a leading ~ and makes the path absolute.
func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(home, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// SavePath places filename in the save directory, creating it if needed.
func (c *Config) SavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
