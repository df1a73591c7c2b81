// Package config loads server configuration from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STATEHOUSE"

type Config struct {
	Server    Server      `mapstructure:"server"`
	Database  Database    `mapstructure:"database"`
	Redis     RedisConfig `mapstructure:"redis"`
	Log       Log         `mapstructure:"log"`
	Search    Search      `mapstructure:"search"`
	Geo       Geo         `mapstructure:"geo"`
	RateLimit RateLimit   `mapstructure:"ratelimit"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// Database configures the Postgres connection pool.
type Database struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

// RedisConfig configures the optional Redis client. An empty URL disables Redis.
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Search configures full-text bill search.
type Search struct {
	Language string `mapstructure:"language"`
}

// Geo configures the point-to-division lookup service.
type Geo struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimit toggles API key enforcement.
type RateLimit struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.request_timeout", 45*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 17)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 2*time.Hour)
	v.SetDefault("database.connect_timeout", 45*time.Second)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("search.language", "english")

	v.SetDefault("geo.base_url", "https://v3.openstates.org/divisions.geo")
	v.SetDefault("geo.timeout", 5*time.Second)

	v.SetDefault("ratelimit.enabled", true)
}

// Load reads configuration from STATEHOUSE_* environment variables and, when
// path is non-empty, from the given config file. DATABASE_URL and REDIS_URL
// are honoured as fallbacks for the connection strings.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("bind database url: %w", err)
	}
	if err := v.BindEnv("redis.url", EnvPrefix+"_REDIS_URL", "REDIS_URL"); err != nil {
		return nil, fmt.Errorf("bind redis url: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url is required"))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, errors.New("database.max_open_conns must be positive"))
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, errors.New("database.max_idle_conns must not exceed max_open_conns"))
	}
	if c.Search.Language == "" {
		errs = append(errs, errors.New("search.language is required"))
	}
	return errors.Join(errs...)
}
