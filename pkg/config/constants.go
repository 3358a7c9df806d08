package config

// EnvPrefix namespaces every environment variable read by envconfig.
const EnvPrefix = "BLOOMSTITCH"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Canonical environment variable names, used by tests and docs.
const (
	EnvAppEnv   = "BLOOMSTITCH_APP_ENV"
	EnvPort     = "BLOOMSTITCH_APP_PORT"
	EnvLogLevel = "BLOOMSTITCH_LOG_LEVEL"

	EnvDBDSN    = "BLOOMSTITCH_DB_DSN"
	EnvDBHost   = "BLOOMSTITCH_DB_HOST"
	EnvDBUser   = "BLOOMSTITCH_DB_USER"
	EnvDBName   = "BLOOMSTITCH_DB_NAME"
	EnvRedisURL = "BLOOMSTITCH_REDIS_URL"

	EnvAdminKey = "BLOOMSTITCH_ADMIN_KEY"

	EnvShippingFee           = "BLOOMSTITCH_SHIPPING_FEE"
	EnvFreeShippingThreshold = "BLOOMSTITCH_FREE_SHIPPING_THRESHOLD"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
