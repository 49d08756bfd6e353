package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults applied when the config file leaves a field empty.
const (
	DefaultAPIHost    = "external.api.yle.fi"
	DefaultAreenaHost = "areena.yle.fi"
	DefaultCacheDir   = ".cache"
	DefaultPageLimit  = 100
)

// Config holds API credentials and client settings loaded from the JSON
// config file. It is constructed once at startup and passed explicitly to
// the client and cache; there is no package-level configuration state.
type Config struct {
	AppID      string `json:"app_id"`
	AppKey     string `json:"app_key"`
	APIHost    string `json:"api_host,omitempty"`
	AreenaHost string `json:"areena_host,omitempty"`
	CacheDir   string `json:"cache_dir,omitempty"`
	PageLimit  int    `json:"page_limit,omitempty"`
}

// Load reads and validates the config file at path. Absence or malformed
// content is an error; the caller treats it as fatal before any network
// activity happens.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.APIHost == "" {
		cfg.APIHost = DefaultAPIHost
	}
	if cfg.AreenaHost == "" {
		cfg.AreenaHost = DefaultAreenaHost
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = DefaultPageLimit
	}
}

func validate(cfg Config) error {
	if cfg.AppID == "" {
		return fmt.Errorf("app_id is required")
	}
	if cfg.AppKey == "" {
		return fmt.Errorf("app_key is required")
	}
	return nil
}
