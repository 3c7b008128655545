package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// Gateway drivers supported by GATEWAY_DRIVER.
const (
	GatewayDriverRedis  = "redis"
	GatewayDriverSQLite = "sqlite"
	GatewayDriverHTTP   = "http"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the cache connection details.
	Redis RedisConfig `mapstructure:",squash"`

	// Gateway selects and configures the banner message store.
	Gateway GatewayConfig `mapstructure:",squash"`

	// Banners holds the query/mutation layer tuning.
	Banners BannersConfig `mapstructure:",squash"`

	// Marquee holds the ticker rendering settings.
	Marquee MarqueeConfig `mapstructure:",squash"`

	// Checkout holds the QR payment display settings.
	Checkout CheckoutConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection string.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0" required:"true"`
}

// GatewayConfig holds the banner gateway backend settings.
type GatewayConfig struct {
	// Driver is one of redis, sqlite or http.
	Driver string `mapstructure:"GATEWAY_DRIVER" default:"redis" required:"true"`
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `mapstructure:"GATEWAY_SQLITE_PATH" default:"storefront.db"`
	// URL is the base URL of a remote storefront exposing /banners, used by the http driver.
	URL string `mapstructure:"GATEWAY_URL"`
	// Timeout bounds each request of the http driver.
	Timeout time.Duration `mapstructure:"GATEWAY_TIMEOUT" default:"10s"`

	// Proxy routes the http driver through an outbound proxy.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// ProxyConfig holds the outbound proxy credentials.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"OUTBOUND_PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"OUTBOUND_PROXY_HOST"`
	Port     int    `mapstructure:"OUTBOUND_PROXY_PORT"`
	Username string `mapstructure:"OUTBOUND_PROXY_USER"`
	Password string `mapstructure:"OUTBOUND_PROXY_PASSWORD"`
}

// BannersConfig tunes caching and retries of banner queries.
type BannersConfig struct {
	// CacheTTL is how long a cached query result stays readable.
	CacheTTL time.Duration `mapstructure:"BANNERS_CACHE_TTL" default:"5m"`
	// FetchAllRetries is the number of retries after a failed FetchAll attempt.
	FetchAllRetries int `mapstructure:"BANNERS_FETCH_ALL_RETRIES" default:"3"`
}

// MarqueeConfig holds the marquee fragment settings.
type MarqueeConfig struct {
	// FetchTimeout is how long the fragment waits for messages before rendering the loading state.
	FetchTimeout time.Duration `mapstructure:"MARQUEE_FETCH_TIMEOUT" default:"2s"`
}

// CheckoutConfig holds the QR payment display settings.
type CheckoutConfig struct {
	// QRImageTemplate must contain the {size} and {data} placeholders.
	QRImageTemplate string `mapstructure:"QR_IMAGE_TEMPLATE" default:"https://api.qrserver.com/v1/create-qr-code/?size={size}x{size}&data={data}&format=svg"`
	// QRDefaultSize is the pixel width and height used when none is requested.
	QRDefaultSize int `mapstructure:"QR_DEFAULT_SIZE" default:"256"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := validateGateway(config.Gateway); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// validateGateway checks the driver name and the settings each driver needs.
func validateGateway(cfg GatewayConfig) error {
	switch cfg.Driver {
	case GatewayDriverRedis:
		return nil
	case GatewayDriverSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("missing required configuration: GATEWAY_SQLITE_PATH")
		}
		return nil
	case GatewayDriverHTTP:
		if cfg.URL == "" {
			return fmt.Errorf("missing required configuration: GATEWAY_URL")
		}
		return nil
	default:
		return fmt.Errorf("unsupported GATEWAY_DRIVER: %q", cfg.Driver)
	}
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
