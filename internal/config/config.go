// Package config provides configuration loading and structs for docsift.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docsift/docsift/internal/outline"
	"github.com/docsift/docsift/internal/ranking"
	"github.com/docsift/docsift/internal/selection"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool             `yaml:"debug"`
	Input     InputConfig      `yaml:"input"`
	Output    OutputConfig     `yaml:"output"`
	Query     QueryConfig      `yaml:"query"`
	Server    ServerConfig     `yaml:"server"`
	Embedding EmbeddingConfig  `yaml:"embedding"`
	Outline   outline.Config   `yaml:"outline"`
	Scoring   ranking.Config   `yaml:"scoring"`
	Selection selection.Config `yaml:"selection"`
	Watch     WatchConfig      `yaml:"watch"`
}

// InputConfig holds the document source settings.
type InputConfig struct {
	// Dir is the directory scanned for PDF documents.
	Dir string `yaml:"dir"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	// Path is where the JSON report is written. Empty means stdout.
	Path string `yaml:"path"`
}

// QueryConfig holds the default persona and job when none are given on the
// command line or in a request.
type QueryConfig struct {
	Persona string `yaml:"persona"`
	Job     string `yaml:"job"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EmbeddingConfig holds ONNX embedder settings.
type EmbeddingConfig struct {
	// Enabled toggles the semantic backend. When false the ranker runs in
	// TF-IDF fallback mode without touching the model file.
	Enabled    bool   `yaml:"enabled"`
	ModelPath  string `yaml:"model_path"`
	Dimensions int    `yaml:"dimensions"`
	MaxTokens  int    `yaml:"max_tokens"`
	CacheSize  int    `yaml:"cache_size"`
}

// WatchConfig holds directory watch settings.
type WatchConfig struct {
	// DebounceMillis is how long to wait after the last filesystem event
	// before re-running the pipeline.
	DebounceMillis int `yaml:"debounce_millis"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Input.Dir = expandPath(cfg.Input.Dir, configDir)
	if cfg.Output.Path != "" {
		cfg.Output.Path = expandPath(cfg.Output.Path, configDir)
	}
	cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
