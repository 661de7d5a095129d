package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "albums"

// Environment variables read after the config files.
const (
	EnvServerURL = "ALBUMS_SERVER_URL"
	EnvLogLevel  = "ALBUMS_LOG_LEVEL"
)

type Config struct {
	ServerURL      string        `koanf:"server_url" validate:"required,url"`
	AlbumsPath     string        `koanf:"albums_path" default:"/albums/"`
	Extensions     []string      `koanf:"extensions" default:"[\".mp3\"]" validate:"min=1,dive,startswith=."`
	Folders        []string      `koanf:"folders"` // empty means discover from the albums listing
	Icons          string        `koanf:"icons" default:"unicode" validate:"oneof=nerd unicode none"`
	Volume         *float64      `koanf:"volume" default:"1.0" validate:"gte=0,lte=1"`
	OnTrackEnd     string        `koanf:"on_track_end" default:"stop" validate:"oneof=stop advance"`
	RequestTimeout time.Duration `koanf:"request_timeout" default:"15s" validate:"gt=0"`
	MaxTrackSize   string        `koanf:"max_track_size" default:"512 MiB"` // humanized, e.g. "200 MB"
	Notifications  *bool         `koanf:"notifications" default:"true"`
	MPRIS          *bool         `koanf:"mpris" default:"true"`

	Log LogConfig `koanf:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `koanf:"level" default:"info" validate:"oneof=debug info warn error"`
	File  string `koanf:"file"` // empty means $XDG_STATE_HOME/albums/albums.log
}

// Options carries command-line values. Non-empty fields win over files and
// environment.
type Options struct {
	File      string // explicit config file, must exist
	ServerURL string
	LogLevel  string
}

// Load reads the config files in order of priority (last wins), then the
// environment, then opts, applies defaults and validates the result.
func Load(opts Options) (*Config, error) {
	return load(getConfigPaths(), opts)
}

func load(paths []string, opts Options) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "failed to parse %s", path)
			}
		}
	}

	if opts.File != "" {
		path := expandPath(opts.File)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	cfg.overrideFromEnv()
	cfg.overrideFromOptions(opts)

	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	cfg.ServerURL = strings.TrimSuffix(cfg.ServerURL, "/")
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	if _, err := cfg.TrackSizeLimit(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

func (c *Config) overrideFromEnv() {
	if v := os.Getenv(EnvServerURL); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) overrideFromOptions(opts Options) {
	if opts.ServerURL != "" {
		c.ServerURL = opts.ServerURL
	}
	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}
}

// Validate checks the configuration against its validation tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/albums/config.toml
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

// InitialVolume returns the configured start volume.
func (c *Config) InitialVolume() float64 {
	if c.Volume == nil {
		return 1
	}
	return *c.Volume
}

// TrackSizeLimit returns the largest track body, in bytes, the player
// downloads.
func (c *Config) TrackSizeLimit() (int64, error) {
	n, err := humanize.ParseBytes(c.MaxTrackSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid max_track_size %q", c.MaxTrackSize)
	}
	if n == 0 || n > math.MaxInt64 {
		return 0, errors.Newf("max_track_size %q out of range", c.MaxTrackSize)
	}
	return int64(n), nil
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// MPRISEnabled reports whether the MPRIS server should be started.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// LogFile returns the log file path, creating the default state directory
// when no file is configured.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve log file")
	}
	return path, nil
}
