// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvFile is read from the config file's directory, when present, to
// supply values for ${VAR} references the process environment lacks.
const EnvFile = ".env"

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	OMDb     OMDbConfig     `toml:"omdb"`
	ITunes   ITunesConfig   `toml:"itunes"`
	TMDB     TMDBConfig     `toml:"tmdb"`
	Browse   BrowseConfig   `toml:"browse"`
	Cache    CacheConfig    `toml:"cache"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// OMDbConfig configures the movie directory.
type OMDbConfig struct {
	URL     string        `toml:"url"`
	APIKey  string        `toml:"api_key"`
	Timeout time.Duration `toml:"timeout"`
}

// ITunesConfig configures the soundtrack search.
type ITunesConfig struct {
	URL       string        `toml:"url"`
	SongLimit int           `toml:"song_limit"`
	Timeout   time.Duration `toml:"timeout"`
}

// TMDBConfig configures actor portraits. An empty APIKey disables lookups
// and every actor gets a generated avatar.
type TMDBConfig struct {
	URL           string        `toml:"url"`
	APIKey        string        `toml:"api_key"`
	PhotoSize     string        `toml:"photo_size"`
	Workers       int           `toml:"workers"`
	RatePerSecond float64       `toml:"rate_per_second"`
	CacheTTL      time.Duration `toml:"cache_ttl"`
	Timeout       time.Duration `toml:"timeout"`
}

// Enabled reports whether person lookups are configured.
func (c TMDBConfig) Enabled() bool {
	return c.APIKey != ""
}

type BrowseConfig struct {
	DefaultQuery string `toml:"default_query"`
	ResumeLast   bool   `toml:"resume_last"` // start with the last recorded query instead
	PageSize     int    `toml:"page_size"`
	MaxPages     int    `toml:"max_pages"`
}

type CacheConfig struct {
	DisableSearch  bool          `toml:"disable_search"`
	SearchTTL      time.Duration `toml:"search_ttl"`
	EventRetention time.Duration `toml:"event_retention"`
	PruneInterval  time.Duration `toml:"prune_interval"`
}

// Load reads, substitutes, applies defaults and validates the configuration.
// Unresolved environment variables and validation failures are reported
// together in a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads the configuration and applies defaults only.
// Used by tooling that must inspect a broken config.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	lookup, err := envLookup(filepath.Join(filepath.Dir(path), EnvFile))
	if err != nil {
		return nil, nil, err
	}
	content, missing := substituteEnvVars(string(data), lookup)

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/premiere.db"
	}

	if c.OMDb.URL == "" {
		c.OMDb.URL = "https://www.omdbapi.com"
	}
	if c.OMDb.Timeout == 0 {
		c.OMDb.Timeout = 10 * time.Second
	}

	if c.ITunes.URL == "" {
		c.ITunes.URL = "https://itunes.apple.com"
	}
	if c.ITunes.SongLimit == 0 {
		c.ITunes.SongLimit = 6
	}
	if c.ITunes.Timeout == 0 {
		c.ITunes.Timeout = 10 * time.Second
	}

	if c.TMDB.URL == "" {
		c.TMDB.URL = "https://api.themoviedb.org"
	}
	if c.TMDB.PhotoSize == "" {
		c.TMDB.PhotoSize = "w185"
	}
	if c.TMDB.Workers == 0 {
		c.TMDB.Workers = 4
	}
	if c.TMDB.RatePerSecond == 0 {
		c.TMDB.RatePerSecond = 10
	}
	if c.TMDB.CacheTTL == 0 {
		c.TMDB.CacheTTL = 24 * time.Hour
	}
	if c.TMDB.Timeout == 0 {
		c.TMDB.Timeout = 10 * time.Second
	}

	if c.Browse.DefaultQuery == "" {
		c.Browse.DefaultQuery = "2024"
	}
	if c.Browse.PageSize == 0 {
		c.Browse.PageSize = 10
	}
	if c.Browse.MaxPages == 0 {
		c.Browse.MaxPages = 5
	}

	if c.Cache.SearchTTL == 0 {
		c.Cache.SearchTTL = time.Hour
	}
	if c.Cache.EventRetention == 0 {
		c.Cache.EventRetention = 7 * 24 * time.Hour
	}
	if c.Cache.PruneInterval == 0 {
		c.Cache.PruneInterval = time.Hour
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// envLookup resolves names from the process environment first, then from
// the dotenv file at path. A missing file is not an error.
func envLookup(path string) (func(string) (string, bool), error) {
	file, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return os.LookupEnv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := file[name]
		return v, ok
	}, nil
}

// substituteEnvVars replaces variable references with values from lookup.
// Unresolvable references are left in place and reported in missing.
// An empty value counts as unset for the :- and :? forms.
func substituteEnvVars(content string, lookup func(string) (string, bool)) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := lookup(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
