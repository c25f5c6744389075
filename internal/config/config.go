package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CacheConfig struct {
	// DefaultTTL bounds staleness of entries that invalidation never reaches
	// (e.g. single-product lookups). Invalidation remains the primary
	// refresh path.
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"15m"`
}

type Backend struct {
	BaseURL  string        `yaml:"BASE_URL" env:"BACKEND_BASE_URL" env-required:"true"`
	Identity string        `yaml:"IDENTITY" env:"BACKEND_IDENTITY" env-required:"true"`
	Timeout  time.Duration `yaml:"TIMEOUT" env:"BACKEND_TIMEOUT" env-default:"10s"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
	AdminAccessKey string `yaml:"ADMIN_ACCESS_KEY" env:"ADMIN_ACCESS_KEY" env-required:"true"`
}

type SendGrid struct {
	APIKey     string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail  string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:""`
	FromName   string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"VedaKart Storefront"`
	OwnerEmail string `yaml:"OWNER_EMAIL" env:"SENDGRID_OWNER_EMAIL" env-default:""`
	Enabled    bool   `yaml:"ENABLED" env:"SENDGRID_ENABLED" env-default:"false"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront-gateway"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cache        CacheConfig  `yaml:"cache"`
	Backend      Backend      `yaml:"backend"`
	Security     Security     `yaml:"security"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func (r *RedisConnect) GetAddr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
