package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// fileNames are tried in the working directory, then in ConfigDir.
var fileNames = []string{"dotglobe.yaml", "config.yaml"}

// Load builds the effective configuration: defaults < file < flags. The file
// is the -config flag or the first of fileNames found. The result is
// validated before it is returned.
func Load() (*Config, error) {
	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}

	cfg := Default()
	if path != "" {
		if err := readFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return cfg, nil
}

// readFile decodes path onto cfg. A relative mask path set by the file is
// anchored at the file's directory, so a config can sit next to its mask.
func readFile(cfg *Config, path string) error {
	prev := cfg.Mask.Path
	if err := decodeFile(cfg, path); err != nil {
		return fmt.Errorf("loading config from %s: %w", path, err)
	}
	if p := cfg.Mask.Path; p != prev && p != "" && !filepath.IsAbs(p) {
		cfg.Mask.Path = filepath.Join(filepath.Dir(path), p)
	}
	return nil
}

// decodeFile merges a YAML file into cfg. Keys the globe does not know are
// rejected so a misspelt tunable does not silently keep its default.
func decodeFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func findConfigFile() string {
	dirs := []string{".", ConfigDir()}
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "DotGlobe")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "DotGlobe")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "dotglobe")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dotglobe")
	}
}
