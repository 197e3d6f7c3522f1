package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends accepted by store.backend.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Codec kinds accepted by codec.kind.
const (
	CodecTagged = "tagged"
	CodecAES    = "aes"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	SQLite    SQLiteConfig    `mapstructure:"sqlite"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Session   SessionConfig   `mapstructure:"session"`
	Codec     CodecConfig     `mapstructure:"codec"`
	Transform TransformConfig `mapstructure:"transform"`
	Registry  RegistryConfig  `mapstructure:"registry"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StoreConfig selects the byte store that backs the credit registry.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // memory, redis, postgres, sqlite
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // login nonces and rate limits; forced on by store.backend=redis
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"` // key prefix for registry documents
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// SessionConfig feeds the decryption challenge message.
type SessionConfig struct {
	RegistryAddress string `mapstructure:"registry_address"`
	ChainID         int64  `mapstructure:"chain_id"`
	DurationDays    int    `mapstructure:"duration_days"`
}

type CodecConfig struct {
	Kind   string `mapstructure:"kind"`    // tagged, aes
	AESKey string `mapstructure:"aes_key"` // 32-byte hex-encoded key, codec.kind=aes only
}

type TransformConfig struct {
	// Lenient passes unknown operations through instead of failing.
	Lenient bool `mapstructure:"lenient"`
}

type RegistryConfig struct {
	IndexMaxRetries int `mapstructure:"index_max_retries"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BDC_ (BioDiversity Credits).
// Nested keys use underscore: BDC_STORE_BACKEND, BDC_SESSION_CHAIN_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "biodiversity_credits")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "registry:")
	v.SetDefault("sqlite.path", "credits.db")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "biodiversity-credits")
	v.SetDefault("session.registry_address", "")
	v.SetDefault("session.chain_id", 11155111)
	v.SetDefault("session.duration_days", 30)
	v.SetDefault("codec.kind", CodecTagged)
	v.SetDefault("codec.aes_key", "")
	v.SetDefault("transform.lenient", false)
	v.SetDefault("registry.index_max_retries", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BDC_STORE_BACKEND -> store.backend
	v.SetEnvPrefix("BDC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Store.Backend == BackendRedis {
		cfg.Redis.Enabled = true
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendRedis, BackendPostgres, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	switch c.Codec.Kind {
	case CodecTagged:
	case CodecAES:
		if c.Codec.AESKey == "" {
			return fmt.Errorf("codec.aes_key is required when codec.kind is %q", CodecAES)
		}
	default:
		return fmt.Errorf("unknown codec kind %q", c.Codec.Kind)
	}
	if c.Session.DurationDays <= 0 {
		return fmt.Errorf("session.duration_days must be positive, got %d", c.Session.DurationDays)
	}
	if c.Registry.IndexMaxRetries < 1 {
		return fmt.Errorf("registry.index_max_retries must be at least 1, got %d", c.Registry.IndexMaxRetries)
	}
	return nil
}
