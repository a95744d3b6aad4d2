package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/dex/internal/pokedex"
)

// Config captures everything dex reads at startup.
type Config struct {
	APIURL         string        `env:"API_URL"`
	Language       string        `env:"LANGUAGE"`
	LogFile        string        `env:"LOG_FILE"`
	LogLevel       string        `env:"LOG_LEVEL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

const (
	defaultConfigPath     = "~/.config/dex/config.toml"
	defaultLogFile        = "~/.local/state/dex/dex.log"
	defaultLanguage       = "fr"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 15 * time.Second

	envPrefix = "DEX_"
)

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		APIURL:         pokedex.DefaultBaseURL,
		Language:       defaultLanguage,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		RequestTimeout: defaultRequestTimeout,
	}
}

// Load locates and parses the dex config, falling back to defaults when the
// file is missing, then applies DEX_* environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL         string `toml:"api_url"`
		Language       string `toml:"language"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.Language); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func (c *Config) normalize() error {
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		c.APIURL = pokedex.DefaultBaseURL
	}

	lang, err := pokedex.ParseLanguage(c.Language)
	if err != nil {
		return fmt.Errorf("config language: %w", err)
	}
	c.Language = string(lang)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)

	if c.RequestTimeout < 0 {
		return fmt.Errorf("config request_timeout: %s is negative", c.RequestTimeout)
	}
	return nil
}

// DisplayLanguage returns the starting language as a typed value.
func (c Config) DisplayLanguage() pokedex.Language {
	lang, err := pokedex.ParseLanguage(c.Language)
	if err != nil {
		return pokedex.French
	}
	return lang
}

// LogPath returns the log file path, expanding the default when unset.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return mustExpand(defaultLogFile)
	}
	return c.LogFile
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
