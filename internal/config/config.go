package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"240"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT verification settings. Tokens are issued by an
// external identity provider; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"memobox"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds spaced-repetition scheduler parameters. Per-user settings
// (retention, daily budget) override these where present; the rest apply
// globally.
type SRSConfig struct {
	DesiredRetention   float64 `yaml:"desired_retention"  env:"SRS_DESIRED_RETENTION" env-default:"0.9"`
	MaxIntervalDays    int     `yaml:"max_interval_days"  env:"SRS_MAX_INTERVAL"      env-default:"365"`
	// EnableFuzz is a pointer so an explicit false in YAML survives cleanenv,
	// which re-applies env-default tags to zero-value fields. The default
	// (true) is filled in during validation.
	EnableFuzz *bool `yaml:"enable_fuzz" env:"SRS_ENABLE_FUZZ"`
	LearningStepsRaw   string  `yaml:"learning_steps"     env:"SRS_LEARNING_STEPS"    env-default:"1m,10m"`
	RelearningStepsRaw string  `yaml:"relearning_steps"   env:"SRS_RELEARNING_STEPS"  env-default:"10m"`
	NewCardsPerDay     int     `yaml:"new_cards_per_day"  env:"SRS_NEW_CARDS_DAY"     env-default:"20"`
	QueueLimit         int     `yaml:"queue_limit"        env:"SRS_QUEUE_LIMIT"       env-default:"20"`
	WeightsRaw         string  `yaml:"weights"            env:"SRS_WEIGHTS"`

	// LearningSteps is parsed from LearningStepsRaw during validation.
	LearningSteps []time.Duration `yaml:"-" env:"-"`
	// RelearningSteps is parsed from RelearningStepsRaw during validation.
	RelearningSteps []time.Duration `yaml:"-" env:"-"`
	// Weights is parsed from WeightsRaw during validation. Empty means the
	// built-in defaults.
	Weights []float64 `yaml:"-" env:"-"`
}
