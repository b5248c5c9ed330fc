package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Aritro-Git/AIzMarketplace/internal/cart/infra/redisstore"
)

// CartBackend selects where the cart blob lives.
type CartBackend string

const (
	BackendFile   CartBackend = "file"
	BackendMemory CartBackend = "memory"
	BackendRedis  CartBackend = "redis"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	HTTPPort int `yaml:"http_port"`

	CatalogPath string `yaml:"catalog_path"`

	CartBackend CartBackend `yaml:"cart_backend"`
	CartPath    string      `yaml:"cart_path"`
	CartKey     string      `yaml:"cart_key"`

	// TaxRate is a decimal string multiplied against the subtotal. The
	// current policy is zero; the field exists so a real rate ships as
	// configuration.
	TaxRate        string `yaml:"tax_rate"`
	CurrencyPrefix string `yaml:"currency_prefix"`

	Redis redisstore.Config `yaml:"-"`
}

func Load() Config {
	cfg := Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		CatalogPath:    getEnv("CATALOG_PATH", "data/agents.json"),
		CartBackend:    CartBackend(getEnv("CART_BACKEND", string(BackendFile))),
		CartPath:       getEnv("CART_PATH", "data/cart.json"),
		CartKey:        getEnv("CART_KEY", ""),
		TaxRate:        getEnv("TAX_RATE", "0"),
		CurrencyPrefix: getEnv("CURRENCY_PREFIX", "$"),
	}

	// Redis settings only matter for the redis backend; parse failures for
	// the other backends stay silent.
	_ = envconfig.Process("storefront_redis", &cfg.Redis)

	return cfg
}

// FromFile overlays Load with a YAML file. Fields present in the file win
// over environment values.
func FromFile(path string) (Config, error) {
	cfg := Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
