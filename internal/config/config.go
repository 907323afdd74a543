package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	RedisHost string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort uint16 `env:"REDIS_PORT" envDefault:"6379"   validate:"min=1000,max=65535"`

	PostgresHost     string `env:"POSTGRES_HOST"     envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT"     envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER"     envDefault:"eauction_user"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"eauction_password"`
	PostgresDb       string `env:"POSTGRES_DB"       envDefault:"eauction_buyer"`

	// Seller service, owner of the product catalog.
	SellerServiceScheme        string        `env:"SELLER_SERVICE_SCHEME"         envDefault:"http"      validate:"oneof=http https"`
	SellerServiceHost          string        `env:"SELLER_SERVICE_HOST"           envDefault:"localhost" validate:"required"`
	SellerServicePort          int           `env:"SELLER_SERVICE_PORT"           envDefault:"8081"      validate:"min=-1,max=65535"`
	SellerServiceProductSearch string        `env:"SELLER_SERVICE_PRODUCT_SEARCH" envDefault:"/e-auction/api/v1/seller/product/{product-id}" validate:"required,contains={product-id}"`
	SellerServiceTimeout       time.Duration `env:"SELLER_SERVICE_TIMEOUT"        envDefault:"5s"        validate:"gt=0"`

	SequenceSyncInterval time.Duration `env:"SEQUENCE_SYNC_INTERVAL" envDefault:"1m" validate:"gt=0"`

	// Zone used to decide what "today" is when checking a bid window.
	TimeZone string `env:"TIME_ZONE" envDefault:"Local"`

	HttpServerPort uint16 `env:"HTTP_SERVER_PORT" envDefault:"8085" validate:"min=1000,max=65535"`
}

func LoadConfig() (*Config, error) {
	// Load environment variables from .env file
	err := godotenv.Load(".env")
	if err != nil {
		zap.L().Debug(".env file not found", zap.Error(err))
	}

	cfg := &Config{}
	// Parse config from environment variables
	if err = env.Parse(cfg); err != nil {
		zap.L().Error("config_load_failed", zap.Error(err))
		return nil, err
	}

	// Validate the config
	validate := validator.New()
	err = validate.Struct(cfg)
	if err != nil {
		zap.L().Error("config_validation_failed", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

// Location resolves TimeZone, falling back to the process zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		zap.L().Warn("config_time_zone_invalid", zap.String("tz", c.TimeZone), zap.Error(err))
		return time.Local
	}
	return loc
}
