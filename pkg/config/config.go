package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MAJAZ_DB_DSN"
	EnvDBHost = "MAJAZ_DB_HOST"
	EnvDBUser = "MAJAZ_DB_USER"
	EnvDBName = "MAJAZ_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Payments     PaymentsConfig
	Scraper      ScraperConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MAJAZ_APP_ENV" required:"true"`
	Port         string `envconfig:"MAJAZ_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MAJAZ_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MAJAZ_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MAJAZ_DB_DSN"`
	Driver string `envconfig:"MAJAZ_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MAJAZ_DB_HOST"`
	LegacyPort     int    `envconfig:"MAJAZ_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MAJAZ_DB_USER"`
	LegacyPassword string `envconfig:"MAJAZ_DB_PASSWORD"`
	LegacyName     string `envconfig:"MAJAZ_DB_NAME"`
	LegacySSLMode  string `envconfig:"MAJAZ_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MAJAZ_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAJAZ_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MAJAZ_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MAJAZ_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MAJAZ_REDIS_URL" required:"true"`
	Password     string        `envconfig:"MAJAZ_REDIS_PASSWORD"`
	DB           int           `envconfig:"MAJAZ_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MAJAZ_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MAJAZ_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MAJAZ_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MAJAZ_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MAJAZ_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"MAJAZ_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"MAJAZ_JWT_ISSUER" required:"true"`
}

type PaymentsConfig struct {
	StripeAPIKey string `envconfig:"MAJAZ_STRIPE_API_KEY"`
	StripeEnv    string `envconfig:"MAJAZ_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (p PaymentsConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(p.StripeEnv))
	if env == "" {
		return "test"
	}
	return env
}

type ScraperConfig struct {
	BaseURL string        `envconfig:"MAJAZ_SCRAPER_BASE_URL"`
	APIKey  string        `envconfig:"MAJAZ_SCRAPER_API_KEY"`
	Timeout time.Duration `envconfig:"MAJAZ_SCRAPER_TIMEOUT" default:"45s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MAJAZ_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MAJAZ_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
