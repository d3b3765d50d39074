// Package config loads calcdesk settings from defaults, an optional YAML
// file and CALCDESK_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"calcdesk/locale"
)

const envPrefix = "CALCDESK"

// Backends.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server    ServerConfig    `mapstructure:"server"     yaml:"server"`
	Cache     CacheConfig     `mapstructure:"cache"      yaml:"cache"`
	Storage   StorageConfig   `mapstructure:"storage"    yaml:"storage"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Insights  InsightsConfig  `mapstructure:"insights"   yaml:"insights"`
	Locale    LocaleConfig    `mapstructure:"locale"     yaml:"locale"`
	Logging   LoggingConfig   `mapstructure:"logging"    yaml:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"             yaml:"host"`
	Port            int           `mapstructure:"port"             yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    yaml:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"     yaml:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"  yaml:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"     yaml:"cors_origins"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type CacheConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend"` // "none", "memory" or "redis"
	TTL     time.Duration `mapstructure:"ttl"     yaml:"ttl"`
	Redis   RedisConfig   `mapstructure:"redis"   yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"     yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db"       yaml:"db"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // "memory" or "sqlite"
	Path    string `mapstructure:"path"    yaml:"path"`
}

type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"  yaml:"enabled"`
	Capacity int           `mapstructure:"capacity" yaml:"capacity"`
	Refill   time.Duration `mapstructure:"refill"   yaml:"refill"`
}

type InsightsConfig struct {
	APIKey    string        `mapstructure:"api_key"    yaml:"api_key"`
	URL       string        `mapstructure:"url"        yaml:"url"`
	Model     string        `mapstructure:"model"      yaml:"model"`
	MaxTokens int           `mapstructure:"max_tokens" yaml:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"    yaml:"timeout"`
}

type LocaleConfig struct {
	Default string `mapstructure:"default" yaml:"default"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "json" or "console"
}

// Load reads config.yaml from ./config, ~/.calcdesk or /etc/calcdesk when
// present. A missing file is not an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".calcdesk"))
	v.AddConfigPath("/etc/calcdesk")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads the config at path, which must exist.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("cache.backend", BackendMemory)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("storage.path", filepath.Join(homeDir(), ".calcdesk", "calculations.db"))

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.refill", time.Minute)

	v.SetDefault("insights.api_key", "")
	v.SetDefault("insights.url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("insights.model", "gpt-4o-mini")
	v.SetDefault("insights.max_tokens", 300)
	v.SetDefault("insights.timeout", 30*time.Second)

	v.SetDefault("locale.default", locale.DefaultTag)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// overrideFromEnv accepts the conventional OPENAI_API_KEY when no insights
// key is configured.
func overrideFromEnv(cfg *Config) {
	if cfg.Insights.APIKey == "" {
		cfg.Insights.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendNone, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is required for sqlite", ErrInvalidConfig)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Capacity <= 0 || c.RateLimit.Refill <= 0) {
		return fmt.Errorf("%w: rate_limit needs a positive capacity and refill", ErrInvalidConfig)
	}
	if !locale.IsSupported(c.Locale.Default) {
		return fmt.Errorf("%w: unsupported default locale %q", ErrInvalidConfig, c.Locale.Default)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
