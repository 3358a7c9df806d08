package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Shipping ShippingConfig
	Cart     CartConfig
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
	Env          string `envconfig:"BLOOMSTITCH_APP_ENV" required:"true"`
	Port         string `envconfig:"BLOOMSTITCH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BLOOMSTITCH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BLOOMSTITCH_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"BLOOMSTITCH_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BLOOMSTITCH_DB_DSN"`
	Driver string `envconfig:"BLOOMSTITCH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BLOOMSTITCH_DB_HOST"`
	LegacyPort     int    `envconfig:"BLOOMSTITCH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BLOOMSTITCH_DB_USER"`
	LegacyPassword string `envconfig:"BLOOMSTITCH_DB_PASSWORD"`
	LegacyName     string `envconfig:"BLOOMSTITCH_DB_NAME"`
	LegacySSLMode  string `envconfig:"BLOOMSTITCH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BLOOMSTITCH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BLOOMSTITCH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BLOOMSTITCH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BLOOMSTITCH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	// URL is optional; when empty the API falls back to the in-memory
	// session cart store.
	URL          string        `envconfig:"BLOOMSTITCH_REDIS_URL"`
	Address      string        `envconfig:"BLOOMSTITCH_REDIS_ADDR"`
	Password     string        `envconfig:"BLOOMSTITCH_REDIS_PASSWORD"`
	DB           int           `envconfig:"BLOOMSTITCH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BLOOMSTITCH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BLOOMSTITCH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BLOOMSTITCH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BLOOMSTITCH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BLOOMSTITCH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type AdminConfig struct {
	Key string `envconfig:"BLOOMSTITCH_ADMIN_KEY" required:"true"`
}

// ShippingConfig holds the order-total shipping rule. Fee and threshold are
// whole rupees.
type ShippingConfig struct {
	Fee                   int `envconfig:"BLOOMSTITCH_SHIPPING_FEE" default:"250"`
	FreeShippingThreshold int `envconfig:"BLOOMSTITCH_FREE_SHIPPING_THRESHOLD" default:"10000"`
}

type CartConfig struct {
	SessionTTL time.Duration `envconfig:"BLOOMSTITCH_CART_SESSION_TTL" default:"24h"`
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
