package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "uffo.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.uffo/configs/uffo.yaml -> ./configs/uffo.yaml -> embedded default.
// Values missing from a file keep their defaults. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Decode(customPath, data)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Decode(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Decode(FileName, defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Decode parses data on top of DefaultConfig, picking the format from the
// file extension of name.
func Decode(name string, data []byte) (Config, error) {
	cfg := DefaultConfig()
	if isTOML(name) {
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: cannot parse %s: %w", name, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", name, err)
	}
	return cfg, nil
}

// Write encodes cfg to w as YAML, or as TOML when format is "toml".
func Write(w io.Writer, cfg Config, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode toml: %w", err)
		}
	case "", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
	return nil
}

func isTOML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".toml")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".uffo", "configs", filename)
}
