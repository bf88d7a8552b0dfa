package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that was read but failed Validate.
var ErrInvalid = errors.New("invalid config")

// SourceError reports which settings source failed while loading.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// source overlays one origin of settings onto a config.
type source struct {
	name  string
	apply func(*Config) error
}

// Load resolves the settings for one run. The defaults are overlaid by the
// config file and then by explicit flags, and the merged result is
// validated. Errors wrap a *SourceError naming the failing source.
func Load() (*Config, error) {
	return resolve(fileSource(ConfigPath()), flagSource())
}

func resolve(sources ...source) (*Config, error) {
	cfg := Default()
	for _, src := range sources {
		if err := src.apply(cfg); err != nil {
			return nil, &SourceError{Source: src.name, Err: err}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &SourceError{Source: "merged settings", Err: fmt.Errorf("%w: %w", ErrInvalid, err)}
	}
	return cfg, nil
}

// fileSource reads path, or the first file found in searchPaths when path
// is empty. Having no config file at all is not an error.
func fileSource(path string) source {
	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return source{name: "file", apply: func(*Config) error { return nil }}
	}
	return source{name: "file " + path, apply: func(cfg *Config) error {
		return loadFromFile(cfg, path)
	}}
}

func flagSource() source {
	return source{name: "flags", apply: func(cfg *Config) error {
		applyFlags(cfg)
		return nil
	}}
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	return []string{
		"sceneview.yaml",
		"config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
}

func findConfigFile() string {
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for the current OS.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "SceneView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SceneView")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "sceneview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "sceneview")
	}
}

// loadFromFile overlays the YAML document at path onto cfg. Keys it does
// not set keep their current value; unknown keys are an error. An empty
// file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
