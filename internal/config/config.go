package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Cache        CacheConfig        `yaml:"cache"`
	RobotCatalog RobotCatalogConfig `yaml:"robot_catalog"`
	Blob         BlobConfig         `yaml:"blob"`
	Log          LogConfig          `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrationsDir   string        `yaml:"migrations_dir"     env:"DATABASE_MIGRATIONS_DIR"     env-default:"migrations"`
}

// CacheConfig holds in-process cache settings.
type CacheConfig struct {
	GroupSize int `yaml:"group_size" env:"CACHE_GROUP_SIZE" env-default:"4096"`
}

// RobotCatalogConfig holds settings for the external robot catalog service.
type RobotCatalogConfig struct {
	BaseURL string        `yaml:"base_url" env:"ROBOT_CATALOG_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"ROBOT_CATALOG_TIMEOUT"  env-default:"10s"`
}

// BlobConfig holds S3-compatible object store settings for QR images.
type BlobConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"BLOB_ENDPOINT"        env-required:"true"`
	AccessKey     string `yaml:"access_key"      env:"BLOB_ACCESS_KEY"      env-required:"true"`
	SecretKey     string `yaml:"secret_key"      env:"BLOB_SECRET_KEY"      env-required:"true"`
	Bucket        string `yaml:"bucket"          env:"BLOB_BUCKET"          env-default:"alpha-code"`
	UseSSL        bool   `yaml:"use_ssl"         env:"BLOB_USE_SSL"         env-default:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"BLOB_PUBLIC_BASE_URL" env-required:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
