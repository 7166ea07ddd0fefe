package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the optional snap configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig holds persistent flag defaults. Pointer fields distinguish
// "unset" from the zero value so CLI flags only fall back when present.
type DefaultsConfig struct {
	Workers   *int     `toml:"workers"`
	BlockSize *int     `toml:"block_size"`
	Digest    *string  `toml:"digest"`
	Compress  *bool    `toml:"compress"`
	BWLimit   *string  `toml:"bwlimit"`
	SSHPort   *int     `toml:"ssh_port"`
	SSHKey    *string  `toml:"ssh_key"`
	RSH       *string  `toml:"rsh"`
	Verbosity []string `toml:"verbosity"`
}

// Path returns the resolved path to the config file.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "snap", "config.toml")
}

// Load reads the config file from the XDG path. Returns a zero Config
// (no error) if the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}

	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
